package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Issue implements interfaces.Issue
type Issue struct {
	repo interfaces.Repository
}

// NewIssue creates a new Issue use case
func NewIssue(repo interfaces.Repository) *Issue {
	return &Issue{repo: repo}
}

// Create stores a new issue, assigning the next ID when the issue has none
func (u *Issue) Create(ctx context.Context, issue *model.Issue) (*model.Issue, error) {
	if issue == nil {
		return nil, goerr.Wrap(model.ErrInvalidIssue, "issue is nil")
	}

	// Reject bad input before consuming an ID
	if err := issue.Validate(); err != nil {
		return nil, err
	}

	created := *issue
	if created.ID == 0 {
		id, err := u.repo.GetNextIssueID(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get next issue ID")
		}
		created.ID = id
	} else if err := u.ensureNotExists(ctx, created.ID); err != nil {
		return nil, err
	}

	if err := u.repo.PutIssue(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to save issue", goerr.V("id", created.ID))
	}

	ctxlog.From(ctx).Info("Issue created",
		"id", created.ID,
		"component", created.Component,
		"severity", created.Severity,
	)

	return &created, nil
}

// ensureNotExists rejects an explicit ID that is already stored
func (u *Issue) ensureNotExists(ctx context.Context, id types.IssueID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidIssue, "invalid issue ID", goerr.V("id", id))
	}

	_, err := u.repo.GetIssue(ctx, id)
	switch {
	case err == nil:
		return goerr.Wrap(model.ErrIssueExists, "issue ID is already used", goerr.V("id", id))
	case errors.Is(err, model.ErrIssueNotFound):
		return nil
	default:
		return goerr.Wrap(err, "failed to check issue ID", goerr.V("id", id))
	}
}

// Get retrieves an issue by ID
func (u *Issue) Get(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	issue, err := u.repo.GetIssue(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get issue", goerr.V("id", id))
	}
	return issue, nil
}

// Delete removes an issue
func (u *Issue) Delete(ctx context.Context, id types.IssueID) error {
	if err := u.repo.DeleteIssue(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete issue", goerr.V("id", id))
	}

	ctxlog.From(ctx).Info("Issue deleted", "id", id)
	return nil
}

// List returns all stored issues
func (u *Issue) List(ctx context.Context) ([]*model.Issue, error) {
	issues, err := u.repo.ListIssues(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list issues")
	}
	return issues, nil
}

// Import stores issues in order and returns how many were stored. It stops at
// the first issue that cannot be stored.
func (u *Issue) Import(ctx context.Context, issues []model.Issue) (int, error) {
	for i := range issues {
		if _, err := u.Create(ctx, &issues[i]); err != nil {
			return i, goerr.Wrap(err, "failed to import issue",
				goerr.V("index", i),
				goerr.V("component", issues[i].Component))
		}
	}

	ctxlog.From(ctx).Info("Issues imported", "count", len(issues))
	return len(issues), nil
}

var _ interfaces.Issue = (*Issue)(nil)
