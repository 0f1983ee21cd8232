// Package notification delivers donation events to organizations: an in-process queue on the
// API side and Firebase Cloud Messaging on the push worker side.
package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodlink/config"
	deliverycontext "foodlink/internal/delivery/context"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// Dispatcher queues notifications on a bounded channel and publishes them from worker goroutines.
// Notify never blocks: when the queue is full the event is dropped and logged.
type Dispatcher struct {
	publisher      service.EventPublisher
	logger         *slog.Logger
	clock          clockwork.Clock
	workers        int
	publishTimeout time.Duration

	mu      sync.RWMutex
	stopped bool
	queue   chan *service.DonationEvent
	wg      sync.WaitGroup
}

// DispatcherParams holds dependencies for the Dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Clock     clockwork.Clock
	Publisher service.EventPublisher
}

// NewDispatcher creates the dispatcher and binds its workers to the fx lifecycle.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	d := newDispatcher(params.Publisher, params.Logger, params.Clock, params.Config.Dispatch)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()

			return nil
		},
		OnStop: d.Stop,
	})

	return d
}

func newDispatcher(publisher service.EventPublisher, logger *slog.Logger, clock clockwork.Clock, cfg *config.DispatchConfig) *Dispatcher {
	publishTimeout := cfg.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = config.DefaultDispatchPublishTimeout
	}

	return &Dispatcher{
		publisher:      publisher,
		logger:         logger.With(slog.String("component", "notification_dispatcher")),
		clock:          clock,
		workers:        max(1, cfg.Workers),
		publishTimeout: publishTimeout,
		queue:          make(chan *service.DonationEvent, max(1, cfg.QueueSize)),
	}
}

// Start launches the publishing workers.
func (d *Dispatcher) Start() {
	for range d.workers {
		d.wg.Add(1)
		go d.run()
	}
}

// Stop closes the queue and waits for queued events to be published or for ctx to end.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.logger.Warn("Dispatcher stopped with events still queued", slog.Int("queued", len(d.queue)))

		return ctx.Err()
	}
}

// Notify queues an event for organizationID.
func (d *Dispatcher) Notify(ctx context.Context, organizationID uuid.UUID, event string, payload map[string]string) {
	donationEvent := &service.DonationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.New().String(),
		Event:          event,
		OrganizationID: organizationID.String(),
		DonationID:     payload["donation_id"],
		Payload:        payload,
		OccurredAt:     d.clock.Now(),
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Warn("Dispatcher stopped, dropping event",
			slog.String("event", event),
			slog.String("organization_id", donationEvent.OrganizationID),
		)

		return
	}

	select {
	case d.queue <- donationEvent:
	default:
		d.logger.Warn("Notification queue full, dropping event",
			slog.String("event", event),
			slog.String("organization_id", donationEvent.OrganizationID),
			slog.String("donation_id", donationEvent.DonationID),
		)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for event := range d.queue {
		d.publish(event)
	}
}

func (d *Dispatcher) publish(event *service.DonationEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), d.publishTimeout)
	defer cancel()

	if err := d.publisher.PublishDonationEvent(ctx, event); err != nil {
		d.logger.Error("Failed to publish donation event",
			slog.String("event", event.Event),
			slog.String("event_id", event.EventID),
			slog.String("organization_id", event.OrganizationID),
			slog.String("donation_id", event.DonationID),
			slog.Any("error", err),
		)
	}
}
