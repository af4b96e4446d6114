package cli

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/cli/config"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/repository"
	"github.com/secmon-lab/issueboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSummarize() *cli.Command {
	var (
		filePath     string
		format       string
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		clockCfg     config.Clock
	)

	flags := slices.Concat(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "YAML file with issues (default: read from the repository)",
				Destination: &filePath,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (text, json)",
				Value:       string(FormatText),
				Sources:     cli.EnvVars("ISSUEBOARD_OUTPUT_FORMAT"),
				Destination: &format,
			},
		},
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "summarize",
		Usage: "Print the dashboard and optionally post it to Slack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			outputFormat, err := ParseOutputFormat(format)
			if err != nil {
				return err
			}

			clock, err := clockCfg.Configure()
			if err != nil {
				return err
			}

			var repo interfaces.Repository
			if filePath != "" {
				issues, err := config.LoadIssuesFromFile(filePath)
				if err != nil {
					return err
				}
				repo, err = loadMemoryRepository(ctx, issues)
				if err != nil {
					return err
				}
			} else {
				repo, err = firestoreCfg.Configure(ctx)
				if err != nil {
					return err
				}
			}
			defer repo.Close()

			dashboardUC := usecase.NewDashboard(repo, slackCfg.Configure(ctx), usecase.WithClock(clock))

			var report *model.DashboardReport
			if slackCfg.Channel != "" {
				report, err = dashboardUC.Publish(ctx, slackCfg.ChannelID())
			} else {
				report, err = dashboardUC.Build(ctx)
			}
			if err != nil {
				return err
			}

			return Render(os.Stdout, report, outputFormat)
		},
	}
}

// loadMemoryRepository stores issues in a fresh memory repository
func loadMemoryRepository(ctx context.Context, issues []model.Issue) (interfaces.Repository, error) {
	repo := repository.NewMemory()
	n, err := usecase.NewIssue(repo).Import(ctx, issues)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load issues", goerr.V("imported", n))
	}

	ctxlog.From(ctx).Debug("Issues loaded", slog.Int("count", n))
	return repo, nil
}
