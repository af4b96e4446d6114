package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu           sync.RWMutex
	issues       map[types.IssueID]*model.Issue
	issueCounter types.IssueID
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		issues: make(map[types.IssueID]*model.Issue),
	}
}

// PutIssue saves an issue to memory
func (m *Memory) PutIssue(ctx context.Context, issue *model.Issue) error {
	if issue == nil {
		return goerr.New("issue is nil")
	}
	if err := issue.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue ID")
	}
	if err := issue.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external modifications
	issueCopy := *issue
	m.issues[issue.ID] = &issueCopy

	// Keep the counter ahead of explicitly numbered issues
	if issue.ID > m.issueCounter {
		m.issueCounter = issue.ID
	}

	return nil
}

// GetIssue retrieves an issue by ID
func (m *Memory) GetIssue(ctx context.Context, id types.IssueID) (*model.Issue, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid issue ID")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	issue, exists := m.issues[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrIssueNotFound, "failed to get issue", goerr.V("id", id))
	}

	issueCopy := *issue
	return &issueCopy, nil
}

// DeleteIssue deletes an issue from memory
func (m *Memory) DeleteIssue(ctx context.Context, id types.IssueID) error {
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid issue ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.issues[id]; !exists {
		return goerr.Wrap(model.ErrIssueNotFound, "failed to delete issue", goerr.V("id", id))
	}

	delete(m.issues, id)
	return nil
}

// ListIssues retrieves all issues from memory
func (m *Memory) ListIssues(ctx context.Context) ([]*model.Issue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	issues := make([]*model.Issue, 0, len(m.issues))
	for _, issue := range m.issues {
		issueCopy := *issue
		issues = append(issues, &issueCopy)
	}

	sort.Slice(issues, func(i, j int) bool {
		return issues[i].ID < issues[j].ID
	})

	return issues, nil
}

// GetNextIssueID returns the next available issue ID
func (m *Memory) GetNextIssueID(ctx context.Context) (types.IssueID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.issueCounter++
	return m.issueCounter, nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
