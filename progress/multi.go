package progress

import "context"

// MultiEmitter fans out events to multiple emitters.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMultiEmitter creates a MultiEmitter that forwards events to all
// non-nil emitters.
func NewMultiEmitter(emitters ...Emitter) *MultiEmitter {
	filtered := make([]Emitter, 0, len(emitters))
	for _, e := range emitters {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return &MultiEmitter{emitters: filtered}
}

func (m *MultiEmitter) Emit(ctx context.Context, event Event) {
	for _, e := range m.emitters {
		e.Emit(ctx, event)
	}
}
