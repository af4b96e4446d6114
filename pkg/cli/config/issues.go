package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// IssueFile is the YAML layout for bulk issue data
type IssueFile struct {
	Issues []model.Issue `yaml:"issues"`
}

// LoadIssuesFromFile loads issues from a YAML file
func LoadIssuesFromFile(path string) ([]model.Issue, error) {
	if path == "" {
		return nil, goerr.New("issue file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "issue file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read issue file",
			goerr.V("path", path))
	}

	issues, err := ParseIssues(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid issue file",
			goerr.V("path", path))
	}

	return issues, nil
}

// ParseIssues parses and validates YAML issue data. Issues without an ID
// are accepted; they get one when stored.
func ParseIssues(data []byte) ([]model.Issue, error) {
	var file IssueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML")
	}

	seen := make(map[int]bool)
	for i := range file.Issues {
		issue := &file.Issues[i]
		// Severity identifiers are case-insensitive in files
		if severity, err := types.ParseSeverity(issue.Severity.String()); err == nil {
			issue.Severity = severity
		}
		if err := issue.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid issue", goerr.V("index", i))
		}
		if issue.ID == 0 {
			continue
		}
		if issue.ID < 0 {
			return nil, goerr.Wrap(model.ErrInvalidIssue, "negative issue ID",
				goerr.V("index", i), goerr.V("id", issue.ID))
		}
		if seen[issue.ID.Int()] {
			return nil, goerr.Wrap(model.ErrInvalidIssue, "duplicated issue ID",
				goerr.V("index", i), goerr.V("id", issue.ID))
		}
		seen[issue.ID.Int()] = true
	}

	if file.Issues == nil {
		file.Issues = []model.Issue{}
	}
	return file.Issues, nil
}
