package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	slackSvc "github.com/secmon-lab/issueboard/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting dashboards",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEBOARD_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Default Slack channel ID for dashboards",
			Category:    "Slack",
			Sources:     cli.EnvVars("ISSUEBOARD_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// Configure creates a Slack client. It returns nil when no token is set.
func (s *Slack) Configure(ctx context.Context) interfaces.SlackClient {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("Slack not configured - dashboards will not be posted")
		return nil
	}
	return slackSvc.New(s.OAuthToken)
}

// IsConfigured checks if Slack is properly configured for posting
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != ""
}

// ChannelID returns the default channel
func (s *Slack) ChannelID() types.ChannelID {
	return types.ChannelID(s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
