package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// SummaryRow is the per-component line of the dashboard
type SummaryRow struct {
	Component      string         `json:"component"`
	OpenCount      int            `json:"open_count"`
	WorstSeverity  types.Severity `json:"worst_severity"`
	AverageAgeDays float64        `json:"average_age_days"`
}

// Summarize groups issues by component and returns one row per component,
// ordered by open count descending and then by component name ascending.
// Ages are measured against now. The input is not modified.
func Summarize(issues []Issue, now time.Time) []SummaryRow {
	type group struct {
		row    SummaryRow
		ageSum float64 // days
	}

	groups := make(map[string]*group)
	for _, issue := range issues {
		g, ok := groups[issue.Component]
		if !ok {
			g = &group{row: SummaryRow{
				Component:     issue.Component,
				WorstSeverity: issue.Severity,
			}}
			groups[issue.Component] = g
		}

		g.row.OpenCount++
		if issue.Severity.MoreSevere(g.row.WorstSeverity) {
			g.row.WorstSeverity = issue.Severity
		}
		g.ageSum += issue.AgeDays(now)
	}

	rows := make([]SummaryRow, 0, len(groups))
	for _, g := range groups {
		g.row.AverageAgeDays = g.ageSum / float64(g.row.OpenCount)
		rows = append(rows, g.row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OpenCount != rows[j].OpenCount {
			return rows[i].OpenCount > rows[j].OpenCount
		}
		return rows[i].Component < rows[j].Component
	})

	return rows
}

// DashboardReport is one aggregation of the open issues
type DashboardReport struct {
	ID          types.ReportID `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	TotalCount  int            `json:"total_count"`
	Rows        []SummaryRow   `json:"rows"`
}

// NewDashboardReport summarizes issues against now
func NewDashboardReport(issues []Issue, now time.Time) (*DashboardReport, error) {
	id, err := types.NewReportID()
	if err != nil {
		return nil, err
	}

	return &DashboardReport{
		ID:          id,
		GeneratedAt: now,
		TotalCount:  len(issues),
		Rows:        Summarize(issues, now),
	}, nil
}
