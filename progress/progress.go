// Package progress provides the best-effort side channel the pipeline uses
// to report stage transitions. Emitters are fire-and-forget: a failure to
// emit must never fail the stage that triggered it, so the Emitter contract
// has no error return.
package progress

import (
	"context"
	"time"
)

// EventType identifies the kind of progress event.
type EventType string

const (
	TypeProgress     EventType = "progress"
	TypeNodeComplete EventType = "node_complete"
	TypeError        EventType = "error"
	TypeComplete     EventType = "complete"
)

// Event is one progress notification for a tender analysis run.
type Event struct {
	TenderID  string
	Type      EventType
	Percent   int // 0-100
	Message   string
	Stage     string
	Timestamp time.Time
}

// Emitter receives progress events from pipeline stages. Implementations
// must be safe for concurrent use: proposal audits emit from worker
// goroutines.
type Emitter interface {
	Emit(ctx context.Context, event Event)
}
