package events

import (
	"context"
	"sync"
	"time"

	"github.com/glamsuite/salon-scheduler/internal/config"
	"github.com/glamsuite/salon-scheduler/internal/logger"
)

const emitTimeout = 5 * time.Second

// Dispatcher fans events out through a buffered queue and a single
// worker goroutine. Dispatch never blocks the caller: when the queue
// is full the event is dropped and logged, never allowed to slow or
// fail the operation that produced it.
type Dispatcher struct {
	emitter Emitter
	queue   chan Event
	log     *logger.Logger
	wg      sync.WaitGroup
}

func NewDispatcher(emitter Emitter, queueSize int, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		emitter: emitter,
		queue:   make(chan Event, queueSize),
		log:     log,
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

// NewFromConfig selects the kafka emitter when brokers are configured
// and the nop emitter otherwise.
func NewFromConfig(cfg *config.Config, log *logger.Logger) *Dispatcher {
	var emitter Emitter = NopEmitter{}
	if len(cfg.KafkaBrokers) > 0 {
		emitter = NewKafkaEmitter(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	return NewDispatcher(emitter, cfg.EventQueueSize, log)
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		if err := d.emitter.Emit(ctx, ev); err != nil {
			d.log.Error("event emit failed",
				"type", ev.Type,
				"tenant_id", ev.TenantID,
				"appointment_id", ev.AppointmentID,
				"error", err,
			)
		}
		cancel()
	}
}

// Dispatch enqueues ev without blocking; a full queue drops it.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("event queue full, dropping event",
			"type", ev.Type,
			"appointment_id", ev.AppointmentID,
		)
	}
}

// Close drains the queue, waits for the worker and closes the emitter.
func (d *Dispatcher) Close() error {
	close(d.queue)
	d.wg.Wait()
	return d.emitter.Close()
}
