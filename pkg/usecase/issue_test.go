package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"github.com/secmon-lab/issueboard/pkg/repository"
	"github.com/secmon-lab/issueboard/pkg/usecase"
)

func TestIssueUseCaseCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns ID when missing", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)

		first, err := uc.Create(ctx, model.NewIssue("UI", types.SeverityLow, time.Now()))
		gt.NoError(t, err).Required()
		second, err := uc.Create(ctx, model.NewIssue("API", types.SeverityHigh, time.Now()))
		gt.NoError(t, err).Required()

		gt.Equal(t, types.IssueID(1), first.ID)
		gt.Equal(t, types.IssueID(2), second.ID)

		stored, err := repo.GetIssue(ctx, second.ID)
		gt.NoError(t, err)
		gt.Equal(t, "API", stored.Component)
	})

	t.Run("keeps explicit ID", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)

		issue := model.NewIssue("UI", types.SeverityLow, time.Now())
		issue.ID = 42
		created, err := uc.Create(ctx, issue)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.IssueID(42), created.ID)
	})

	t.Run("rejects explicit ID already stored", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)

		original := model.NewIssue("UI", types.SeverityLow, time.Now())
		original.ID = 7
		_, err := uc.Create(ctx, original)
		gt.NoError(t, err).Required()

		replacement := model.NewIssue("API", types.SeverityCritical, time.Now())
		replacement.ID = 7
		created, err := uc.Create(ctx, replacement)
		gt.Error(t, err)
		gt.V(t, created).Nil()
		gt.True(t, errors.Is(err, model.ErrIssueExists))

		stored, err := repo.GetIssue(ctx, 7)
		gt.NoError(t, err).Required()
		gt.Equal(t, "UI", stored.Component)
	})

	t.Run("rejects negative explicit ID", func(t *testing.T) {
		mockRepo := &mocks.RepositoryMock{}
		uc := usecase.NewIssue(mockRepo)

		issue := model.NewIssue("UI", types.SeverityLow, time.Now())
		issue.ID = -3
		_, err := uc.Create(ctx, issue)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
		gt.A(t, mockRepo.GetIssueCalls()).Length(0)
	})

	t.Run("repository error while checking ID", func(t *testing.T) {
		mockRepo := &mocks.RepositoryMock{
			GetIssueFunc: func(ctx context.Context, id types.IssueID) (*model.Issue, error) {
				return nil, goerr.New("database error")
			},
		}
		uc := usecase.NewIssue(mockRepo)

		issue := model.NewIssue("UI", types.SeverityLow, time.Now())
		issue.ID = 5
		_, err := uc.Create(ctx, issue)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to check issue ID")
		gt.A(t, mockRepo.PutIssueCalls()).Length(0)
	})

	t.Run("does not modify input", func(t *testing.T) {
		uc := usecase.NewIssue(repository.NewMemory())
		issue := model.NewIssue("UI", types.SeverityLow, time.Now())

		_, err := uc.Create(ctx, issue)
		gt.NoError(t, err)
		gt.Equal(t, types.IssueID(0), issue.ID)
	})

	t.Run("invalid issue does not consume an ID", func(t *testing.T) {
		mockRepo := &mocks.RepositoryMock{}
		uc := usecase.NewIssue(mockRepo)

		created, err := uc.Create(ctx, model.NewIssue("UI", types.Severity("urgent"), time.Now()))
		gt.Error(t, err)
		gt.V(t, created).Nil()
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
		gt.A(t, mockRepo.GetNextIssueIDCalls()).Length(0)

		_, err = uc.Create(ctx, nil)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))
	})

	t.Run("repository error handling", func(t *testing.T) {
		mockRepo := &mocks.RepositoryMock{
			GetNextIssueIDFunc: func(ctx context.Context) (types.IssueID, error) {
				return 0, goerr.New("database error")
			},
		}
		uc := usecase.NewIssue(mockRepo)

		created, err := uc.Create(ctx, model.NewIssue("UI", types.SeverityLow, time.Now()))
		gt.Error(t, err)
		gt.V(t, created).Nil()
		gt.S(t, err.Error()).Contains("failed to get next issue ID")
	})
}

func TestIssueUseCaseGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewIssue(repo)

	created, err := uc.Create(ctx, model.NewIssue("Database", types.SeverityHigh, time.Now()))
	gt.NoError(t, err).Required()

	got, err := uc.Get(ctx, created.ID)
	gt.NoError(t, err)
	gt.Equal(t, created.Component, got.Component)

	gt.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.Get(ctx, created.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrIssueNotFound))

	err = uc.Delete(ctx, created.ID)
	gt.True(t, errors.Is(err, model.ErrIssueNotFound))
}

func TestIssueUseCaseImport(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("imports all issues", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)

		n, err := uc.Import(ctx, []model.Issue{
			{Component: "UI", Severity: types.SeverityLow, OpenedOn: now},
			{ID: 10, Component: "API", Severity: types.SeverityCritical, OpenedOn: now},
			{Component: "Backend", Severity: types.SeverityMedium, OpenedOn: now},
		})
		gt.NoError(t, err)
		gt.Equal(t, 3, n)

		issues, err := uc.List(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, issues).Length(3)
		gt.Equal(t, types.IssueID(1), issues[0].ID)
		gt.Equal(t, types.IssueID(10), issues[1].ID)
		gt.Equal(t, types.IssueID(11), issues[2].ID)
	})

	t.Run("re-import of numbered issues is rejected", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)
		issues := []model.Issue{
			{ID: 1, Component: "UI", Severity: types.SeverityLow, OpenedOn: now},
			{ID: 2, Component: "API", Severity: types.SeverityHigh, OpenedOn: now},
		}

		_, err := uc.Import(ctx, issues)
		gt.NoError(t, err).Required()

		n, err := uc.Import(ctx, issues)
		gt.Equal(t, 0, n)
		gt.True(t, errors.Is(err, model.ErrIssueExists))
	})

	t.Run("stops at first invalid issue", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewIssue(repo)

		n, err := uc.Import(ctx, []model.Issue{
			{Component: "UI", Severity: types.SeverityLow, OpenedOn: now},
			{Component: "", Severity: types.SeverityLow, OpenedOn: now},
			{Component: "API", Severity: types.SeverityLow, OpenedOn: now},
		})
		gt.Error(t, err)
		gt.Equal(t, 1, n)
		gt.True(t, errors.Is(err, model.ErrInvalidIssue))

		issues, err := uc.List(ctx)
		gt.NoError(t, err)
		gt.A(t, issues).Length(1)
	})
}
