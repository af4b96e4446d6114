package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// IssueHandler serves the issue endpoints
type IssueHandler struct {
	issueUC interfaces.Issue
}

// NewIssueHandler creates a new IssueHandler
func NewIssueHandler(issueUC interfaces.Issue) *IssueHandler {
	return &IssueHandler{issueUC: issueUC}
}

// createIssueRequest is the body of POST /api/issues
type createIssueRequest struct {
	Component string    `json:"component"`
	Severity  string    `json:"severity"`
	OpenedOn  time.Time `json:"opened_on"`
	Title     string    `json:"title"`
}

// HandleList returns all issues
func (h *IssueHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issueUC.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"issues": issues,
	})
}

// HandleCreate creates an issue from the request body
func (h *IssueHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorWithStatus(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	severity, err := types.ParseSeverity(req.Severity)
	if err != nil {
		writeErrorWithStatus(w, r, err, http.StatusBadRequest)
		return
	}

	issue := model.NewIssue(req.Component, severity, req.OpenedOn)
	issue.Title = req.Title

	created, err := h.issueUC.Create(r.Context(), issue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, created)
}

// HandleGet returns a single issue
func (h *IssueHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseIssueID(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorWithStatus(w, r, err, http.StatusBadRequest)
		return
	}

	issue, err := h.issueUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, issue)
}

// HandleDelete deletes a single issue
func (h *IssueHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseIssueID(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorWithStatus(w, r, err, http.StatusBadRequest)
		return
	}

	if err := h.issueUC.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
