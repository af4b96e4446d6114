package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"github.com/secmon-lab/issueboard/pkg/repository"
)

func newTestIssue(t *testing.T, repo interfaces.Repository, component string, severity types.Severity) *model.Issue {
	t.Helper()

	id, err := repo.GetNextIssueID(context.Background())
	gt.NoError(t, err).Required()

	issue := model.NewIssue(component, severity, time.Now().Add(-48*time.Hour).Truncate(time.Millisecond))
	issue.ID = id
	issue.Title = "test issue " + id.String()
	return issue
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("PutIssue and GetIssue", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		issue := newTestIssue(t, repo, "Backend", types.SeverityHigh)

		err := repo.PutIssue(ctx, issue)
		gt.NoError(t, err)

		retrieved, err := repo.GetIssue(ctx, issue.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, issue.ID, retrieved.ID)
		gt.Equal(t, issue.Component, retrieved.Component)
		gt.Equal(t, issue.Severity, retrieved.Severity)
		gt.Equal(t, issue.Title, retrieved.Title)
		// Timestamp comparison with tolerance for storage precision
		gt.True(t, issue.OpenedOn.Sub(retrieved.OpenedOn).Abs() < time.Second)
	})

	t.Run("PutIssue overwrites existing issue", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		issue := newTestIssue(t, repo, "UI", types.SeverityLow)
		gt.NoError(t, repo.PutIssue(ctx, issue))

		issue.Severity = types.SeverityCritical
		gt.NoError(t, repo.PutIssue(ctx, issue))

		retrieved, err := repo.GetIssue(ctx, issue.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.SeverityCritical, retrieved.Severity)
	})

	t.Run("PutIssue rejects invalid issue", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.PutIssue(ctx, nil))

		issue := newTestIssue(t, repo, "UI", types.SeverityLow)
		issue.ID = 0
		gt.Error(t, repo.PutIssue(ctx, issue))

		issue = newTestIssue(t, repo, "", types.SeverityLow)
		err := repo.PutIssue(ctx, issue)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
	})

	t.Run("GetIssue_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		nonExistentID := types.IssueID(900000000 + time.Now().UnixNano()%1000000)
		_, err := repo.GetIssue(ctx, nonExistentID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrIssueNotFound))
	})

	t.Run("returned issue is a copy", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		issue := newTestIssue(t, repo, "API", types.SeverityMedium)
		gt.NoError(t, repo.PutIssue(ctx, issue))

		issue.Component = "Changed"
		retrieved, err := repo.GetIssue(ctx, issue.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, "API", retrieved.Component)

		retrieved.Component = "Changed again"
		again, err := repo.GetIssue(ctx, issue.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, "API", again.Component)
	})

	t.Run("DeleteIssue", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		issue := newTestIssue(t, repo, "Database", types.SeverityHigh)
		gt.NoError(t, repo.PutIssue(ctx, issue))

		gt.NoError(t, repo.DeleteIssue(ctx, issue.ID))

		_, err := repo.GetIssue(ctx, issue.ID)
		gt.True(t, errors.Is(err, model.ErrIssueNotFound))

		err = repo.DeleteIssue(ctx, issue.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrIssueNotFound))
	})

	t.Run("ListIssues is ordered by ID", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		saved := map[types.IssueID]bool{}
		for _, component := range []string{"UI", "Backend", "Database"} {
			issue := newTestIssue(t, repo, component, types.SeverityLow)
			gt.NoError(t, repo.PutIssue(ctx, issue))
			saved[issue.ID] = true
		}

		issues, err := repo.ListIssues(ctx)
		gt.NoError(t, err).Required()

		found := 0
		for i, issue := range issues {
			if saved[issue.ID] {
				found++
			}
			if i > 0 {
				gt.True(t, issues[i-1].ID < issue.ID)
			}
		}
		gt.Equal(t, 3, found)
	})

	t.Run("GetNextIssueID is increasing", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id1, err := repo.GetNextIssueID(ctx)
		gt.NoError(t, err)
		id2, err := repo.GetNextIssueID(ctx)
		gt.NoError(t, err)
		gt.True(t, id2 > id1)
	})

	t.Run("GetNextIssueID skips explicitly stored IDs", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		id, err := repo.GetNextIssueID(ctx)
		gt.NoError(t, err).Required()

		issue := model.NewIssue("UI", types.SeverityLow, time.Now())
		issue.ID = id + 100
		gt.NoError(t, repo.PutIssue(ctx, issue))

		next, err := repo.GetNextIssueID(ctx)
		gt.NoError(t, err)
		gt.True(t, next > issue.ID)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestMemoryListIssuesEmpty(t *testing.T) {
	repo := repository.NewMemory()
	issues, err := repo.ListIssues(context.Background())
	gt.NoError(t, err)
	gt.V(t, issues).NotNil()
	gt.A(t, issues).Length(0)
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return repo
	})
}
