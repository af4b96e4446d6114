package types

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// IssueID represents an issue identifier
type IssueID int

// String returns the string representation
func (id IssueID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id IssueID) Int() int {
	return int(id)
}

// Validate checks if the issue ID is usable as a storage key
func (id IssueID) Validate() error {
	if id <= 0 {
		return goerr.New("issue ID must be positive", goerr.V("id", int(id)))
	}
	return nil
}

// ParseIssueID parses a decimal issue ID such as a URL path parameter
func ParseIssueID(s string) (IssueID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid issue ID", goerr.V("id", s))
	}
	id := IssueID(n)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ReportID represents a dashboard report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() (ReportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate report ID")
	}
	return ReportID(id.String()), nil
}

// ChannelID represents a Slack channel identifier
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}
