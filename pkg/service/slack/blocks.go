package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"github.com/slack-go/slack"
)

// GetSeverityEmoji returns emoji based on severity
func GetSeverityEmoji(severity types.Severity) string {
	switch severity {
	case types.SeverityCritical:
		return "🚨"
	case types.SeverityHigh:
		return "🔥"
	case types.SeverityMedium:
		return "⚠️"
	case types.SeverityLow:
		return "ℹ️"
	default:
		return "❓"
	}
}

// formatSeverityText formats severity for display with emoji
func formatSeverityText(severity types.Severity) string {
	return fmt.Sprintf("%s %s", GetSeverityEmoji(severity), severity.Name())
}

// BuildDashboardBlocks builds the message blocks for a dashboard report
func BuildDashboardBlocks(report *model.DashboardReport) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "📋 Open issues by component", true, false),
		),
		slack.NewDividerBlock(),
	}

	if len(report.Rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "✅ No open issues", false, false),
			nil,
			nil,
		))
	}

	for _, row := range report.Rows {
		fields := []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Open:*\n%d", row.OpenCount), false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Worst:*\n%s", formatSeverityText(row.WorstSeverity)), false, false),
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Avg age:*\n%.1f d", row.AverageAgeDays), false, false),
		}

		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*%s*", componentLabel(row.Component)), false, false),
			fields,
			nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock(
		"",
		slack.NewTextBlockObject(
			slack.MarkdownType,
			fmt.Sprintf("%d open issues in %d components | generated at %s",
				report.TotalCount,
				len(report.Rows),
				report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST")),
			false,
			false,
		),
	))

	return blocks
}

// BuildDashboardFallbackText builds the plain text shown in notifications
func BuildDashboardFallbackText(report *model.DashboardReport) string {
	if len(report.Rows) == 0 {
		return "No open issues"
	}

	parts := make([]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		parts = append(parts, fmt.Sprintf("%s: %d", componentLabel(row.Component), row.OpenCount))
	}
	return "Open issues: " + strings.Join(parts, ", ")
}

// componentLabel keeps rows for issues without component visible in Slack
func componentLabel(component string) string {
	if component == "" {
		return "(no component)"
	}
	return component
}
