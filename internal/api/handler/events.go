package handler

import (
	"net/http"

	"github.com/DAILY622/Cloud-wealth-mining/internal/api/middleware"
	"github.com/DAILY622/Cloud-wealth-mining/internal/sse"
)

// EventsHandler handles the SSE event stream endpoint
type EventsHandler struct {
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		hubManager: hubManager,
	}
}

// Stream handles GET /api/v1/events. It blocks for the lifetime of the
// connection, streaming the authenticated player's progression events.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	hub := h.hubManager.GetOrCreateHub(player.ID)
	sse.ServeSSE(w, r, hub)
}
