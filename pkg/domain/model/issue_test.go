package model_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

func TestIssueValidate(t *testing.T) {
	t.Run("valid issue", func(t *testing.T) {
		issue := model.NewIssue("Backend", types.SeverityHigh, daysAgo(2))
		gt.NoError(t, issue.Validate())
	})

	t.Run("error when component is empty", func(t *testing.T) {
		issue := model.NewIssue("", types.SeverityHigh, daysAgo(2))
		err := issue.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
	})

	t.Run("error when severity is unknown", func(t *testing.T) {
		issue := model.NewIssue("Backend", types.Severity("urgent"), daysAgo(2))
		err := issue.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
	})

	t.Run("error when opened_on is zero", func(t *testing.T) {
		issue := model.NewIssue("Backend", types.SeverityHigh, time.Time{})
		gt.Error(t, issue.Validate())
	})
}

func TestIssueAge(t *testing.T) {
	issue := model.NewIssue("UI", types.SeverityLow, daysAgo(3))
	gt.Equal(t, 72*time.Hour, issue.Age(refTime))

	future := model.NewIssue("UI", types.SeverityLow, refTime.Add(time.Hour))
	gt.Equal(t, -time.Hour, future.Age(refTime))
}

func TestIssueAgeDays(t *testing.T) {
	testCases := []struct {
		name     string
		openedOn time.Time
		want     float64
	}{
		{name: "whole days", openedOn: daysAgo(3), want: 3.0},
		{name: "half day", openedOn: refTime.Add(-12 * time.Hour), want: 0.5},
		{name: "sub-second", openedOn: refTime.Add(-86400*time.Second - 500*time.Millisecond), want: 1.0 + 0.5/86400},
		{name: "future", openedOn: refTime.Add(36 * time.Hour), want: -1.5},
		{name: "beyond duration range", openedOn: time.Date(1600, 3, 14, 9, 30, 0, 0, time.UTC), want: 155228.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issue := model.NewIssue("UI", types.SeverityLow, tc.openedOn)
			got := issue.AgeDays(refTime)
			gt.True(t, math.Abs(got-tc.want) < 1e-9)
		})
	}
}
