package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/attager/a2a-threat-center/internal/api/middleware"
	"github.com/attager/a2a-threat-center/internal/pkg/errors"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/metrics"
	"github.com/attager/a2a-threat-center/internal/pkg/utils"
	"github.com/attager/a2a-threat-center/internal/stream"
)

// EventSource hands out queued events one consumer at a time
type EventSource interface {
	Consume(ctx context.Context) (stream.Event, error)
}

// StreamHandler pushes live alerts to dashboard clients as server-sent events
type StreamHandler struct {
	events EventSource
	logger *logger.Logger
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(events EventSource, log *logger.Logger) *StreamHandler {
	return &StreamHandler{events: events, logger: log.WithComponent("stream")}
}

// Stream holds the connection open and writes each consumed event as it arrives
// @Summary Live alert stream
// @Description Server-sent events; each frame is `data: <alert JSON>`. Events already delivered to another connection are not replayed.
// @Tags Stream
// @Produce text/event-stream
// @Success 200 {object} alert.Alert "One alert per event"
// @Failure 500 {object} utils.ErrorResponse "Streaming unsupported"
// @Router /stream [get]
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.WriteError(w, errors.Internal("Streaming unsupported", nil))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	metrics.StreamOpened()
	defer metrics.StreamClosed()

	log := h.logger.With("request_id", middleware.GetRequestID(r))
	log.Debug("Stream client connected")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	ctx := r.Context()
	for {
		ev, err := h.events.Consume(ctx)
		if err != nil {
			log.Debug("Stream client disconnected")
			return
		}

		buf.Reset()
		buf.WriteString("data: ")
		if err := enc.Encode(ev); err != nil {
			log.ErrorWithErr(err, "Failed to encode stream event")
			continue
		}
		// Encode already ended the JSON with a newline
		buf.WriteByte('\n')

		if _, err := w.Write(buf.Bytes()); err != nil {
			log.With("alert_id", ev.ID).Debug("Stream write failed, closing")
			return
		}
		flusher.Flush()
		metrics.RecordEventDelivered()
	}
}
