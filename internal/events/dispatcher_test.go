package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/logger"
)

type captureEmitter struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
}

func (c *captureEmitter) Emit(_ context.Context, ev Event) error {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *captureEmitter) Close() error { return nil }

func (c *captureEmitter) captured() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	emitter := &captureEmitter{}
	d := NewDispatcher(emitter, 10, logger.Nop())

	first := Event{Type: TypeCheckedIn, AppointmentID: uuid.New()}
	second := Event{Type: TypeCompleted, AppointmentID: uuid.New()}
	d.Dispatch(first)
	d.Dispatch(second)

	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got := emitter.captured()
	if len(got) != 2 {
		t.Fatalf("delivered %d events, want 2", len(got))
	}
	if got[0].Type != TypeCheckedIn || got[1].Type != TypeCompleted {
		t.Errorf("order = %s, %s", got[0].Type, got[1].Type)
	}
	if got[0].OccurredAt.IsZero() {
		t.Error("OccurredAt not stamped")
	}
}

func TestDispatchNeverBlocksWhenQueueFull(t *testing.T) {
	emitter := &captureEmitter{block: make(chan struct{})}
	d := NewDispatcher(emitter, 1, logger.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Dispatch(Event{Type: TypeMoved, AppointmentID: uuid.New()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	close(emitter.block)
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNopEmitter(t *testing.T) {
	var e NopEmitter
	if err := e.Emit(context.Background(), Event{}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
