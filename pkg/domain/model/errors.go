package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrIssueNotFound = goerr.New("issue not found")
	ErrInvalidIssue  = goerr.New("invalid issue")
	ErrIssueExists   = goerr.New("issue already exists")

	ErrSlackNotConfigured = goerr.New("slack client is not configured")
)
