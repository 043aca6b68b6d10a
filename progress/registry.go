package progress

import (
	"fmt"
	"log/slog"
	"sync"
)

var (
	emitters = map[string]Emitter{
		"noop": NoopEmitter{},
		"slog": NewSlogEmitter(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetEmitter returns a registered emitter by name.
// Pre-registered emitters: "noop" and "slog" (default logger).
func GetEmitter(name string) (Emitter, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	e, exists := emitters[name]
	if !exists {
		return nil, fmt.Errorf("unknown emitter: %s", name)
	}
	return e, nil
}

// RegisterEmitter adds or replaces a named emitter in the registry.
func RegisterEmitter(name string, emitter Emitter) {
	mutex.Lock()
	defer mutex.Unlock()

	emitters[name] = emitter
}
