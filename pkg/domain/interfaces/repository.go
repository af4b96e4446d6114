package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Repository defines the interface for issue persistence
type Repository interface {
	PutIssue(ctx context.Context, issue *model.Issue) error
	GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error)
	DeleteIssue(ctx context.Context, id types.IssueID) error
	// ListIssues returns all stored issues ordered by ID
	ListIssues(ctx context.Context) ([]*model.Issue, error)
	GetNextIssueID(ctx context.Context) (types.IssueID, error)

	// Close closes the repository connection
	Close() error
}
