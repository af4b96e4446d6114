package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	slackSvc "github.com/secmon-lab/issueboard/pkg/service/slack"
	"github.com/slack-go/slack"
)

// DashboardConfig holds configuration for Dashboard use case
type DashboardConfig struct {
	clock func() time.Time
}

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*DashboardConfig)

// WithClock sets the function used to read the reference time
func WithClock(clock func() time.Time) DashboardOption {
	return func(c *DashboardConfig) {
		c.clock = clock
	}
}

// NewDashboardConfig creates a new DashboardConfig with default values and optional settings
func NewDashboardConfig(opts ...DashboardOption) *DashboardConfig {
	config := &DashboardConfig{
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// Dashboard implements interfaces.Dashboard
type Dashboard struct {
	repo        interfaces.Repository
	slackClient interfaces.SlackClient
	config      *DashboardConfig
}

// NewDashboard creates a new Dashboard use case. slackClient may be nil when
// Slack is not configured.
func NewDashboard(repo interfaces.Repository, slackClient interfaces.SlackClient, opts ...DashboardOption) *Dashboard {
	return &Dashboard{
		repo:        repo,
		slackClient: slackClient,
		config:      NewDashboardConfig(opts...),
	}
}

// Build summarizes the stored issues against the configured clock
func (u *Dashboard) Build(ctx context.Context) (*model.DashboardReport, error) {
	return u.BuildAt(ctx, u.config.clock())
}

// BuildAt summarizes the stored issues against now
func (u *Dashboard) BuildAt(ctx context.Context, now time.Time) (*model.DashboardReport, error) {
	stored, err := u.repo.ListIssues(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues")
	}

	// Snapshot so the aggregation never sees a shared record
	issues := make([]model.Issue, 0, len(stored))
	for _, issue := range stored {
		issues = append(issues, *issue)
	}

	report, err := model.NewDashboardReport(issues, now)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dashboard report")
	}

	ctxlog.From(ctx).Debug("Dashboard built",
		"reportID", report.ID,
		"issues", report.TotalCount,
		"components", len(report.Rows),
		"now", now,
	)

	return report, nil
}

// SlackEnabled reports whether dashboards can be posted
func (u *Dashboard) SlackEnabled() bool {
	return u.slackClient != nil
}

// VerifySlack checks the Slack token so that a bad token fails at startup
// instead of on the first publish
func (u *Dashboard) VerifySlack(ctx context.Context) error {
	if !u.SlackEnabled() {
		return goerr.Wrap(model.ErrSlackNotConfigured, "cannot verify Slack token")
	}

	resp, err := u.slackClient.AuthTestContext(ctx)
	if err != nil {
		return goerr.Wrap(err, "Slack token verification failed")
	}

	ctxlog.From(ctx).Info("Slack token verified",
		"team", resp.Team,
		"user", resp.User,
		"botID", resp.BotID,
	)
	return nil
}

// Publish builds the dashboard and posts it to a Slack channel
func (u *Dashboard) Publish(ctx context.Context, channelID types.ChannelID) (*model.DashboardReport, error) {
	if !u.SlackEnabled() {
		return nil, goerr.Wrap(model.ErrSlackNotConfigured, "cannot publish dashboard",
			goerr.V("channel", channelID))
	}
	if channelID == "" {
		return nil, goerr.New("channel ID is empty")
	}

	report, err := u.Build(ctx)
	if err != nil {
		return nil, err
	}

	_, ts, err := u.slackClient.PostMessageContext(ctx, channelID.String(),
		slack.MsgOptionBlocks(slackSvc.BuildDashboardBlocks(report)...),
		slack.MsgOptionText(slackSvc.BuildDashboardFallbackText(report), false),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to post dashboard",
			goerr.V("channel", channelID),
			goerr.V("reportID", report.ID))
	}

	ctxlog.From(ctx).Info("Dashboard published",
		"channel", channelID,
		"ts", ts,
		"reportID", report.ID,
	)

	return report, nil
}

var _ interfaces.Dashboard = (*Dashboard)(nil)
