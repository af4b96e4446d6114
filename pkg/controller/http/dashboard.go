package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueboard/pkg/domain/interfaces"
	"github.com/secmon-lab/issueboard/pkg/domain/model"
	"github.com/secmon-lab/issueboard/pkg/domain/types"
	"github.com/secmon-lab/issueboard/pkg/utils/async"
)

// DashboardHandler serves the dashboard endpoints
type DashboardHandler struct {
	ctx            context.Context
	dashboardUC    interfaces.Dashboard
	defaultChannel types.ChannelID
}

// NewDashboardHandler creates a new DashboardHandler. ctx carries the server
// logger for publishing that continues after the response is sent.
func NewDashboardHandler(ctx context.Context, dashboardUC interfaces.Dashboard, defaultChannel types.ChannelID) *DashboardHandler {
	return &DashboardHandler{
		ctx:            ctx,
		dashboardUC:    dashboardUC,
		defaultChannel: defaultChannel,
	}
}

// publishRequest is the body of POST /api/dashboard/publish
type publishRequest struct {
	Channel string `json:"channel"`
}

// HandleGet returns the dashboard. The optional "now" query parameter
// (RFC 3339) replaces the current time as reference for ages.
func (h *DashboardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var (
		report *model.DashboardReport
		err    error
	)

	if v := r.URL.Query().Get("now"); v != "" {
		now, parseErr := time.Parse(time.RFC3339, v)
		if parseErr != nil {
			writeErrorWithStatus(w, r, goerr.Wrap(parseErr, "invalid now parameter", goerr.V("now", v)), http.StatusBadRequest)
			return
		}
		report, err = h.dashboardUC.BuildAt(r.Context(), now)
	} else {
		report, err = h.dashboardUC.Build(r.Context())
	}

	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

// HandlePublish accepts the request and posts the dashboard to Slack in the background
func (h *DashboardHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeErrorWithStatus(w, r, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	if !h.dashboardUC.SlackEnabled() {
		writeErrorWithStatus(w, r, model.ErrSlackNotConfigured, http.StatusServiceUnavailable)
		return
	}

	channel := types.ChannelID(req.Channel)
	if channel == "" {
		channel = h.defaultChannel
	}
	if channel == "" {
		writeErrorWithStatus(w, r, goerr.New("channel is required"), http.StatusBadRequest)
		return
	}

	ctx := ctxlog.With(h.ctx, ctxlog.From(r.Context()))
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := h.dashboardUC.Publish(ctx, channel)
		return err
	})

	writeJSON(w, r, http.StatusAccepted, map[string]string{
		"status":  "accepted",
		"channel": channel.String(),
	})
}
