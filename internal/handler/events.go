package handler

import (
	"fmt"
	"net/http"

	"github.com/killpowa/api/internal/model"
	"github.com/killpowa/api/internal/service"
)

// EventsHandler handles SSE event streaming
type EventsHandler struct {
	eventHub *service.EventHub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventHub *service.EventHub) *EventsHandler {
	return &EventsHandler{
		eventHub: eventHub,
	}
}

// Stream handles GET /stream. It delivers domain events published after the
// connection was made; heartbeats go out as SSE comments so clients see
// traffic even when nothing happens.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, model.NewServerError())
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	sub := h.eventHub.Subscribe()
	defer h.eventHub.Unsubscribe(sub.ID)

	flusher.Flush()

	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			if event.Type == service.EventHeartbeat {
				fmt.Fprint(w, ": heartbeat\n\n")
			} else {
				fmt.Fprint(w, event.Format())
			}
			flusher.Flush()

		case <-sub.Done:
			return

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}
