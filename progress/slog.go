package progress

import (
	"context"
	"log/slog"
)

// SlogEmitter emits progress events to a slog.Logger. The event type becomes
// the log message and the remaining fields are flattened as attributes;
// error events log at warn level since the pipeline continues past them.
type SlogEmitter struct {
	logger *slog.Logger
}

// NewSlogEmitter creates a SlogEmitter that emits to the given logger.
func NewSlogEmitter(logger *slog.Logger) *SlogEmitter {
	return &SlogEmitter{logger: logger}
}

func (e *SlogEmitter) Emit(ctx context.Context, event Event) {
	level := slog.LevelInfo
	if event.Type == TypeError {
		level = slog.LevelWarn
	}

	e.logger.LogAttrs(ctx, level, string(event.Type),
		slog.String("tender_id", event.TenderID),
		slog.Int("percent", event.Percent),
		slog.String("stage", event.Stage),
		slog.String("message", event.Message),
	)
}
