package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
)

// OutputFormat is the presentation of a dashboard on stdout
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat parses "text" or "json"
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", goerr.New("invalid output format", goerr.V("format", s))
	}
}

// Render writes the report in the given format
func Render(w io.Writer, report *model.DashboardReport, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, report)
	default:
		return RenderText(w, report)
	}
}

// RenderText writes one line per row:
//
//	Backend  |  2 open | worst: Medium   | avg age: 4.0 d
func RenderText(w io.Writer, report *model.DashboardReport) error {
	for _, row := range report.Rows {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return goerr.Wrap(err, "failed to write dashboard row",
				goerr.V("component", row.Component))
		}
	}
	return nil
}

// FormatRow formats a single summary row as text
func FormatRow(row model.SummaryRow) string {
	return fmt.Sprintf("%-8s | %2d open | worst: %-8s | avg age: %.1f d",
		row.Component, row.OpenCount, row.WorstSeverity.Name(), row.AverageAgeDays)
}

// RenderJSON writes the report as indented JSON
func RenderJSON(w io.Writer, report *model.DashboardReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode dashboard",
			goerr.V("reportID", report.ID))
	}
	return nil
}
