package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Issue defines issue management operations
type Issue interface {
	Create(ctx context.Context, issue *model.Issue) (*model.Issue, error)
	Get(ctx context.Context, id types.IssueID) (*model.Issue, error)
	Delete(ctx context.Context, id types.IssueID) error
	List(ctx context.Context) ([]*model.Issue, error)
	Import(ctx context.Context, issues []model.Issue) (int, error)
}

// Dashboard defines dashboard operations
type Dashboard interface {
	Build(ctx context.Context) (*model.DashboardReport, error)
	BuildAt(ctx context.Context, now time.Time) (*model.DashboardReport, error)
	Publish(ctx context.Context, channelID types.ChannelID) (*model.DashboardReport, error)
	SlackEnabled() bool
}
