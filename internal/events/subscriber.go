package events

import (
	"context"
	"sync"
	"sync/atomic"
)

// Subscriber is an EventHandler that queues events on a buffered channel.
// HandleEvent never blocks: when the buffer is full the event is dropped and
// counted, so a slow reader cannot stall the session.
type Subscriber struct {
	ch         chan *Event
	dropped    atomic.Int64
	closeOnce  sync.Once
	mu         sync.RWMutex
	closed     bool
	unregister func()
}

// Subscribe registers a new Subscriber with the emitter.
func Subscribe(emitter *InMemoryEventEmitter, buffer int) *Subscriber {
	if buffer < 1 {
		buffer = 1
	}
	s := &Subscriber{ch: make(chan *Event, buffer)}
	s.unregister = emitter.RegisterHandler(s)
	return s
}

// Events returns the channel events are delivered on.
// It is closed by Close.
func (s *Subscriber) Events() <-chan *Event {
	return s.ch
}

// Dropped returns how many events were discarded because the buffer was full.
func (s *Subscriber) Dropped() int64 {
	return s.dropped.Load()
}

// HandleEvent implements EventHandler.
func (s *Subscriber) HandleEvent(_ context.Context, event *Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil
	}

	select {
	case s.ch <- event:
	default:
		s.dropped.Add(1)
	}
	return nil
}

// Close unregisters the subscriber and closes its channel.
func (s *Subscriber) Close() {
	s.closeOnce.Do(func() {
		s.unregister()
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
	})
}
