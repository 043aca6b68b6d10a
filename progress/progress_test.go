package progress_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tailored-agentic-units/tenderaudit/progress"
)

type countingEmitter struct {
	mu    sync.Mutex
	count int
}

func (c *countingEmitter) Emit(ctx context.Context, event progress.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func testEvent() progress.Event {
	return progress.Event{
		TenderID:  "tender-1",
		Type:      progress.TypeProgress,
		Percent:   25,
		Message:   "checklist ready",
		Stage:     "create_master_checklist",
		Timestamp: time.Now(),
	}
}

func TestMultiEmitter_FansOut(t *testing.T) {
	first := &countingEmitter{}
	second := &countingEmitter{}

	multi := progress.NewMultiEmitter(first, nil, second)
	multi.Emit(context.Background(), testEvent())

	if first.count != 1 || second.count != 1 {
		t.Errorf("Expected both emitters to receive the event, got %d and %d", first.count, second.count)
	}
}

func TestNoopEmitter(t *testing.T) {
	progress.NoopEmitter{}.Emit(context.Background(), testEvent())
}

func TestSlogEmitter_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	progress.NewSlogEmitter(logger).Emit(context.Background(), testEvent())

	out := buf.String()
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("Expected info level, got: %s", out)
	}
	if !strings.Contains(out, "tender_id=tender-1") {
		t.Errorf("Expected tender_id attribute, got: %s", out)
	}
	if !strings.Contains(out, "percent=25") {
		t.Errorf("Expected percent attribute, got: %s", out)
	}
}

func TestSlogEmitter_ErrorEventsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	event := testEvent()
	event.Type = progress.TypeError
	progress.NewSlogEmitter(logger).Emit(context.Background(), event)

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("Expected warn level for error events, got: %s", buf.String())
	}
}

func TestGetEmitter(t *testing.T) {
	for _, name := range []string{"noop", "slog"} {
		if _, err := progress.GetEmitter(name); err != nil {
			t.Errorf("Expected pre-registered emitter %q, got: %v", name, err)
		}
	}

	if _, err := progress.GetEmitter("unknown"); err == nil {
		t.Error("Expected error for unknown emitter")
	}
}

func TestRegisterEmitter(t *testing.T) {
	custom := &countingEmitter{}
	progress.RegisterEmitter("counting", custom)

	resolved, err := progress.GetEmitter("counting")
	if err != nil {
		t.Fatalf("GetEmitter failed: %v", err)
	}

	resolved.Emit(context.Background(), testEvent())
	if custom.count != 1 {
		t.Errorf("Expected registered emitter to receive the event, got %d", custom.count)
	}
}
