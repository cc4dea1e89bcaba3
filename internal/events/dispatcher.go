package events

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/logger"
	"github.com/palettelab/retint/internal/messaging"
)

// publishTimeout bounds a single broker publish attempt
const publishTimeout = 10 * time.Second

// Dispatcher fans workflow events out to the message broker after the
// originating transaction has committed
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch queues an event for publishing. It never blocks the caller
	// and never fails the transition that produced the event.
	Dispatch(ctx context.Context, event *domain.Event)
	// Close drains queued events and releases the pool
	Close()
}

type poolDispatcher struct {
	pool      pond.Pool
	publisher messaging.Publisher
}

// NewPoolDispatcher creates a dispatcher backed by a bounded worker pool
func NewPoolDispatcher(publisher messaging.Publisher, poolSize int) Dispatcher {
	if poolSize <= 0 {
		poolSize = 10
	}
	return &poolDispatcher{
		pool:      pond.NewPool(poolSize),
		publisher: publisher,
	}
}

// Dispatch queues an event for asynchronous publishing. Events are emitted
// after commit, so a publish failure is logged and dropped rather than
// unwinding the already-committed transition.
func (d *poolDispatcher) Dispatch(ctx context.Context, event *domain.Event) {
	// Detach from the request context so an aborted request does not cancel
	// the publish of an already-committed transition.
	reqLogger := logger.FromContext(ctx)

	d.pool.Submit(func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := d.publisher.PublishEvent(publishCtx, event); err != nil {
			reqLogger.Error("failed to publish event",
				zap.Error(err),
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)))
		}
	})
}

// Close drains queued events and releases the pool
func (d *poolDispatcher) Close() {
	d.pool.StopAndWait()
}
