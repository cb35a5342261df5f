// Package eventlog provides recorders for operational events reported by the
// envelope use cases. Recorders only receive a message; storage, rotation and
// formatting belong to the logger behind them.
package eventlog

import (
	"log/slog"

	"github.com/google/uuid"
)

// SlogRecorder records events as warn-level structured log entries.
// Each entry gets an event_id (UUIDv7) so it can be correlated across sinks.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a recorder writing to logger.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	return &SlogRecorder{logger: logger}
}

// Record writes message to the logger.
func (r *SlogRecorder) Record(message string) {
	r.logger.Warn(message, slog.String("event_id", newEventID()))
}

// NopRecorder discards every event.
type NopRecorder struct{}

// NewNopRecorder creates a recorder that discards every event.
func NewNopRecorder() *NopRecorder {
	return &NopRecorder{}
}

// Record does nothing.
func (n *NopRecorder) Record(message string) {}

func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
