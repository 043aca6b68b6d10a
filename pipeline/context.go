package pipeline

import (
	"context"
	"time"

	"github.com/tailored-agentic-units/tenderaudit/progress"
)

// RunContext carries the identity and collaborators of a single analysis
// run. It is created by Run and threaded explicitly through every stage so
// that concurrent runs never share mutable state.
type RunContext struct {
	TenderID string
	Emitter  progress.Emitter
}

func (rc *RunContext) emit(ctx context.Context, eventType progress.EventType, percent int, message, stage string) {
	rc.Emitter.Emit(ctx, progress.Event{
		TenderID:  rc.TenderID,
		Type:      eventType,
		Percent:   percent,
		Message:   message,
		Stage:     stage,
		Timestamp: time.Now(),
	})
}
