package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Severity represents how bad an issue is
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRanks is the ordinal of each severity. Higher is more severe.
var severityRanks = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

var severityNames = map[Severity]string{
	SeverityLow:      "Low",
	SeverityMedium:   "Medium",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

// AllSeverities returns every severity from least to most severe
func AllSeverities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// ParseSeverity parses a severity identifier case-insensitively
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToLower(s))
	if !sev.IsValid() {
		return "", goerr.New("unknown severity", goerr.V("severity", s))
	}
	return sev, nil
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// Name returns the display name, or the raw value for unknown severities
func (s Severity) Name() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return string(s)
}

// IsValid checks if the severity is one of the known values
func (s Severity) IsValid() bool {
	_, ok := severityRanks[s]
	return ok
}

// Rank returns the ordinal of the severity, -1 if unknown
func (s Severity) Rank() int {
	if rank, ok := severityRanks[s]; ok {
		return rank
	}
	return -1
}

// Compare returns -1, 0 or +1 when s is less, equally or more severe than other
func (s Severity) Compare(other Severity) int {
	a, b := s.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MoreSevere reports whether s ranks strictly above other
func (s Severity) MoreSevere(other Severity) bool {
	return s.Compare(other) > 0
}
