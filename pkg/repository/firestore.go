package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	issuesCollection   = "issues"
	countersCollection = "counters"

	// Document IDs
	issueCounterDocID = "issue"

	// Field names
	fieldCurrentNumber = "current_number"
	fieldID            = "id"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission
	_, err = client.Collection(issuesCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutIssue saves an issue to Firestore and moves the ID counter past it
func (f *Firestore) PutIssue(ctx context.Context, issue *model.Issue) error {
	if issue == nil {
		return goerr.New("issue is nil")
	}
	if err := issue.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue ID")
	}
	if err := issue.Validate(); err != nil {
		return err
	}

	issueDoc := f.client.Collection(issuesCollection).Doc(issue.ID.String())
	counterDoc := f.client.Collection(countersCollection).Doc(issueCounterDocID)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		current, err := readCounter(tx, counterDoc)
		if err != nil {
			return err
		}

		if err := tx.Set(issueDoc, issue); err != nil {
			return goerr.Wrap(err, "failed to set issue document")
		}

		if issue.ID > current {
			return tx.Set(counterDoc, map[string]any{
				fieldCurrentNumber: issue.ID.Int(),
			})
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save issue to firestore", goerr.V("id", issue.ID))
	}

	return nil
}

// GetIssue retrieves an issue by ID
func (f *Firestore) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid issue ID")
	}

	doc, err := f.client.Collection(issuesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrIssueNotFound, "failed to get issue", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get issue from firestore", goerr.V("id", id))
	}

	var issue model.Issue
	if err := doc.DataTo(&issue); err != nil {
		return nil, goerr.Wrap(err, "failed to decode issue", goerr.V("id", id))
	}

	return &issue, nil
}

// DeleteIssue deletes an issue from Firestore
func (f *Firestore) DeleteIssue(ctx context.Context, id types.IssueID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue ID")
	}

	// Delete on a missing document succeeds, so check first
	doc := f.client.Collection(issuesCollection).Doc(id.String())
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrIssueNotFound, "failed to delete issue", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check issue existence", goerr.V("id", id))
	}

	if _, err := doc.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete issue from firestore", goerr.V("id", id))
	}

	return nil
}

// ListIssues retrieves all issues ordered by ID
func (f *Firestore) ListIssues(ctx context.Context) ([]*model.Issue, error) {
	iter := f.client.Collection(issuesCollection).
		OrderBy(fieldID, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	issues := make([]*model.Issue, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate issues")
		}

		var issue model.Issue
		if err := doc.DataTo(&issue); err != nil {
			return nil, goerr.Wrap(err, "failed to decode issue", goerr.V("docID", doc.Ref.ID))
		}
		issues = append(issues, &issue)
	}

	return issues, nil
}

// GetNextIssueID returns the next available issue ID using atomic increment
func (f *Firestore) GetNextIssueID(ctx context.Context) (types.IssueID, error) {
	counterDoc := f.client.Collection(countersCollection).Doc(issueCounterDocID)

	var nextID types.IssueID
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		current, err := readCounter(tx, counterDoc)
		if err != nil {
			return err
		}

		nextID = current + 1
		return tx.Set(counterDoc, map[string]any{
			fieldCurrentNumber: nextID.Int(),
		})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get next issue ID")
	}

	return nextID, nil
}

// readCounter returns the current counter value, 0 if the counter does not exist yet
func readCounter(tx *firestore.Transaction, counterDoc *firestore.DocumentRef) (types.IssueID, error) {
	doc, err := tx.Get(counterDoc)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, goerr.Wrap(err, "failed to get counter document")
	}

	currentNumber, err := doc.DataAt(fieldCurrentNumber)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get current_number field")
	}

	// Handle both int and int64 types
	switch v := currentNumber.(type) {
	case int64:
		return types.IssueID(v), nil
	case int:
		return types.IssueID(v), nil
	default:
		return 0, goerr.New("unexpected type for current_number", goerr.V("value", currentNumber))
	}
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check
