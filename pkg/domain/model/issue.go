package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Issue is an open issue reported against a component
type Issue struct {
	ID        types.IssueID  `json:"id" yaml:"id" firestore:"id"`
	Component string         `json:"component" yaml:"component" firestore:"component"`
	Severity  types.Severity `json:"severity" yaml:"severity" firestore:"severity"`
	OpenedOn  time.Time      `json:"opened_on" yaml:"opened_on" firestore:"opened_on"`
	Title     string         `json:"title,omitempty" yaml:"title,omitempty" firestore:"title"`
}

// NewIssue creates a new Issue. The ID is assigned when the issue is stored.
func NewIssue(component string, severity types.Severity, openedOn time.Time) *Issue {
	return &Issue{
		Component: component,
		Severity:  severity,
		OpenedOn:  openedOn,
	}
}

// Validate checks an issue at an ingestion boundary. Summarize does not call it.
func (i *Issue) Validate() error {
	if i.Component == "" {
		return goerr.Wrap(ErrInvalidIssue, "component is required",
			goerr.V("id", i.ID))
	}
	if !i.Severity.IsValid() {
		return goerr.Wrap(ErrInvalidIssue, "unknown severity",
			goerr.V("id", i.ID),
			goerr.V("severity", i.Severity))
	}
	if i.OpenedOn.IsZero() {
		return goerr.Wrap(ErrInvalidIssue, "opened_on is required",
			goerr.V("id", i.ID))
	}
	return nil
}

// Age returns the time elapsed between opening and now. It is negative for
// issues opened after now. time.Duration saturates at about 292 years, so
// aggregation uses AgeDays.
func (i *Issue) Age(now time.Time) time.Duration {
	return now.Sub(i.OpenedOn)
}

const (
	secondsPerDay = 24 * 60 * 60
	nanosPerDay   = secondsPerDay * 1e9
)

// AgeDays returns the age in fractional days. Seconds and nanoseconds are
// subtracted separately so the result is exact for any pair of times.
func (i *Issue) AgeDays(now time.Time) float64 {
	seconds := now.Unix() - i.OpenedOn.Unix()
	nanos := now.Nanosecond() - i.OpenedOn.Nanosecond()
	return float64(seconds)/secondsPerDay + float64(nanos)/nanosPerDay
}
