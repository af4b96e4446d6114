package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

func TestSeverityValidation(t *testing.T) {
	tests := []struct {
		name     string
		severity types.Severity
		expected bool
	}{
		{"Valid low", types.SeverityLow, true},
		{"Valid medium", types.SeverityMedium, true},
		{"Valid high", types.SeverityHigh, true},
		{"Valid critical", types.SeverityCritical, true},
		{"Invalid empty", types.Severity(""), false},
		{"Invalid mixed case", types.Severity("Critical"), false},
		{"Invalid unknown", types.Severity("blocker"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.severity.IsValid()
			if result != tt.expected {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.severity, result, tt.expected)
			}
		})
	}
}

func TestSeverityRank(t *testing.T) {
	t.Run("rank follows severity, not name order", func(t *testing.T) {
		// "Critical" sorts before "High" lexically but must rank above it
		gt.True(t, types.SeverityCritical.MoreSevere(types.SeverityHigh))
		gt.True(t, types.SeverityHigh.MoreSevere(types.SeverityMedium))
		gt.True(t, types.SeverityMedium.MoreSevere(types.SeverityLow))
		gt.False(t, types.SeverityLow.MoreSevere(types.SeverityLow))
	})

	t.Run("AllSeverities is in ascending rank", func(t *testing.T) {
		all := types.AllSeverities()
		gt.A(t, all).Length(4)
		for i, sev := range all {
			gt.Equal(t, i, sev.Rank())
		}
	})

	t.Run("unknown severity ranks below low", func(t *testing.T) {
		gt.Equal(t, -1, types.Severity("blocker").Rank())
		gt.Equal(t, -1, types.Severity("blocker").Compare(types.SeverityLow))
		gt.Equal(t, 0, types.SeverityHigh.Compare(types.SeverityHigh))
	})
}

func TestParseSeverity(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		sev, err := types.ParseSeverity("CRITICAL")
		gt.NoError(t, err)
		gt.Equal(t, types.SeverityCritical, sev)

		sev, err = types.ParseSeverity("Medium")
		gt.NoError(t, err)
		gt.Equal(t, types.SeverityMedium, sev)
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := types.ParseSeverity("urgent")
		gt.Error(t, err)
	})

	t.Run("display name", func(t *testing.T) {
		gt.Equal(t, "Critical", types.SeverityCritical.Name())
		gt.Equal(t, "weird", types.Severity("weird").Name())
	})
}

func TestParseIssueID(t *testing.T) {
	id, err := types.ParseIssueID("42")
	gt.NoError(t, err)
	gt.Equal(t, types.IssueID(42), id)
	gt.Equal(t, "42", id.String())

	_, err = types.ParseIssueID("abc")
	gt.Error(t, err)

	_, err = types.ParseIssueID("0")
	gt.Error(t, err)
}

func TestNewReportID(t *testing.T) {
	id1, err := types.NewReportID()
	gt.NoError(t, err).Required()
	id2, err := types.NewReportID()
	gt.NoError(t, err).Required()

	gt.NotEqual(t, id1, id2)
	gt.Equal(t, 36, len(id1.String()))
}
