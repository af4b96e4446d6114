package cli

import (
	"context"
	"os"
	"slices"
	"time"

	"github.com/secmon-lab/issueboard/pkg/cli/config"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"github.com/secmon-lab/issueboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdDemo() *cli.Command {
	var (
		format   string
		clockCfg config.Clock
	)

	flags := slices.Concat(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (text, json)",
				Value:       string(FormatText),
				Destination: &format,
			},
		},
		clockCfg.Flags(),
	)

	return &cli.Command{
		Name:  "demo",
		Usage: "Print the dashboard for a built-in sample of issues",
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
			now := clock()

			repo, err := loadMemoryRepository(ctx, SampleIssues(now))
			if err != nil {
				return err
			}
			defer repo.Close()

			report, err := usecase.NewDashboard(repo, nil).BuildAt(ctx, now)
			if err != nil {
				return err
			}

			return Render(os.Stdout, report, outputFormat)
		},
	}
}

// SampleIssues returns seven issues across four components, opened one to
// seven days before now
func SampleIssues(now time.Time) []model.Issue {
	daysAgo := func(n int) time.Time {
		return now.Add(-time.Duration(n) * 24 * time.Hour)
	}

	return []model.Issue{
		{ID: 1, Component: "UI", Severity: types.SeverityLow, OpenedOn: daysAgo(1), Title: "Button misaligned on settings page"},
		{ID: 2, Component: "Backend", Severity: types.SeverityMedium, OpenedOn: daysAgo(2), Title: "Retry queue grows under load"},
		{ID: 3, Component: "Database", Severity: types.SeverityHigh, OpenedOn: daysAgo(3), Title: "Replica lag above threshold"},
		{ID: 4, Component: "API", Severity: types.SeverityCritical, OpenedOn: daysAgo(4), Title: "Token endpoint returns 500"},
		{ID: 5, Component: "UI", Severity: types.SeverityLow, OpenedOn: daysAgo(5), Title: "Typo in onboarding dialog"},
		{ID: 6, Component: "Backend", Severity: types.SeverityMedium, OpenedOn: daysAgo(6), Title: "Slow report generation"},
		{ID: 7, Component: "Database", Severity: types.SeverityHigh, OpenedOn: daysAgo(7), Title: "Nightly backup exceeds window"},
	}
}
