package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/events"
	"github.com/flakeychalk/forcard/internal/platform/logger"
)

// DefaultHeartbeat is the interval of keep-alive comments on an idle stream.
const DefaultHeartbeat = 15 * time.Second

// EventsHandler streams session events to clients as Server-Sent Events.
type EventsHandler struct {
	emitter   *events.InMemoryEventEmitter
	buffer    int
	heartbeat time.Duration
	logger    *slog.Logger
}

// NewEventsHandler creates a new EventsHandler. Each stream gets its own
// subscriber with the given buffer length.
func NewEventsHandler(
	emitter *events.InMemoryEventEmitter,
	buffer int,
	heartbeat time.Duration,
	logger *slog.Logger,
) *EventsHandler {
	if emitter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("emitter cannot be nil for EventsHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}

	return &EventsHandler{
		emitter:   emitter,
		buffer:    buffer,
		heartbeat: heartbeat,
		logger:    logger.With(slog.String("component", "events_handler")),
	}
}

// Stream handles GET /api/events requests.
// It holds the connection open and writes one SSE message per event until
// the client disconnects.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	sub := events.Subscribe(h.emitter, h.buffer)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	log.Debug("event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug("event stream closed", slog.Int64("dropped", sub.Dropped()))
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, open := <-sub.Events():
			if !open {
				return
			}
			if err := writeSSE(w, event); err != nil {
				log.Debug("event stream write failed", slog.String("error", err.Error()))
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, event *events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
	return err
}
