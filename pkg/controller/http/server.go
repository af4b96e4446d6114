package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server. defaultChannel is used by the publish
// endpoint when the request does not name a channel.
func NewServer(
	ctx context.Context,
	addr string,
	issueUC interfaces.Issue,
	dashboardUC interfaces.Dashboard,
	defaultChannel types.ChannelID,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	issueHandler := NewIssueHandler(issueUC)
	dashboardHandler := NewDashboardHandler(ctx, dashboardUC, defaultChannel)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Route("/issues", func(r chi.Router) {
			r.Get("/", issueHandler.HandleList)
			r.Post("/", issueHandler.HandleCreate)
			r.Get("/{id}", issueHandler.HandleGet)
			r.Delete("/{id}", issueHandler.HandleDelete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.HandleGet)
			r.Post("/publish", dashboardHandler.HandlePublish)
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "issueboard",
	})
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors to a status code and writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrIssueNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidIssue):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrIssueExists):
		status = http.StatusConflict
	case errors.Is(err, model.ErrSlackNotConfigured):
		status = http.StatusServiceUnavailable
	}
	writeErrorWithStatus(w, r, err, status)
}

// writeErrorWithStatus writes an error response with an explicit status
func writeErrorWithStatus(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status >= http.StatusInternalServerError {
		ctxlog.From(r.Context()).Error("Request failed", "error", err)
	}

	writeJSON(w, r, status, map[string]string{
		"error": err.Error(),
	})
}
