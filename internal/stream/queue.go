// Package stream holds the bounded delivery queue between the event
// generator and stream connections.
package stream

import (
	"context"
	"time"

	"github.com/attager/a2a-threat-center/internal/domain/alert"
	"github.com/attager/a2a-threat-center/internal/pkg/metrics"
)

// Default queue settings
const (
	DefaultCapacity       = 100
	DefaultPublishTimeout = time.Second
)

// Event is the queue-resident copy of a freshly persisted alert
type Event alert.Alert

// NewEvent copies a persisted alert into a delivery event
func NewEvent(a *alert.Alert) Event {
	return Event(*a)
}

// Queue is a bounded FIFO work queue. Each event is handed to exactly one
// consumer; concurrent producers and consumers need no extra locking.
type Queue struct {
	events         chan Event
	publishTimeout time.Duration
}

// NewQueue creates a queue holding at most capacity events
func NewQueue(capacity int, publishTimeout time.Duration) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if publishTimeout < 0 {
		publishTimeout = 0
	}
	return &Queue{
		events:         make(chan Event, capacity),
		publishTimeout: publishTimeout,
	}
}

// Publish enqueues ev. When the queue is full it waits up to the publish
// timeout for room, then drops ev and returns false.
func (q *Queue) Publish(ctx context.Context, ev Event) bool {
	select {
	case q.events <- ev:
		q.published()
		return true
	default:
	}

	if q.publishTimeout == 0 {
		metrics.RecordEventDropped()
		return false
	}

	timer := time.NewTimer(q.publishTimeout)
	defer timer.Stop()

	select {
	case q.events <- ev:
		q.published()
		return true
	case <-timer.C:
	case <-ctx.Done():
	}

	metrics.RecordEventDropped()
	return false
}

func (q *Queue) published() {
	metrics.RecordEventPublished()
	metrics.SetQueueDepth(len(q.events))
}

// Consume blocks until an event is available or ctx is done
func (q *Queue) Consume(ctx context.Context) (Event, error) {
	select {
	case ev := <-q.events:
		metrics.SetQueueDepth(len(q.events))
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Len returns the number of events waiting
func (q *Queue) Len() int {
	return len(q.events)
}

// Cap returns the queue capacity
func (q *Queue) Cap() int {
	return cap(q.events)
}
