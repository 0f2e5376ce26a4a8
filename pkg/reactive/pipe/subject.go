package pipe

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Subject is an explicit observable-value container: callers push values
// in with Send and every active subscriber sees them. It is the bridge
// between imperative event sources (a text field firing change events, a
// model property being assigned) and a Publisher pipeline.
//
// A value Subject (NewValueSubject) additionally holds the latest value
// and replays it to new subscribers, giving property-binding semantics.
//
// Subject is safe for concurrent use. Observers must not call Send,
// Finish, or Fail from within their own delivery callbacks.
type Subject[T any] struct {
	mu        sync.Mutex
	observers map[uuid.UUID]*subjectObserver[T]

	replay   bool
	value    T
	hasValue bool

	done bool
	err  error
}

type subjectObserver[T any] struct {
	ctx      context.Context
	next     func(T)
	complete func(error)
}

// NewSubject creates a passthrough Subject: subscribers see only values
// sent after they subscribe.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{observers: make(map[uuid.UUID]*subjectObserver[T])}
}

// NewValueSubject creates a Subject holding initial; each new subscriber
// immediately receives the current value, then every subsequent Send.
func NewValueSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		observers: make(map[uuid.UUID]*subjectObserver[T]),
		replay:    true,
		value:     initial,
		hasValue:  true,
	}
}

// Emit implements the Publisher interface.
func (s *Subject[T]) Emit(ctx context.Context, next func(T), complete func(error)) {
	s.mu.Lock()
	if s.done {
		err := s.err
		s.mu.Unlock()
		complete(err)
		return
	}

	id := uuid.New()
	s.observers[id] = &subjectObserver[T]{ctx: ctx, next: next, complete: complete}
	if s.replay && s.hasValue && ctx.Err() == nil {
		next(s.value)
	}
	s.mu.Unlock()

	// Unregister when the subscription ends (release or completion).
	go func() {
		<-ctx.Done()
		s.remove(id)
	}()
}

func (s *Subject[T]) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.observers, id)
	s.mu.Unlock()
}

// Send pushes a value to every active subscriber, in per-subscriber FIFO
// order. After Finish or Fail, Send is a no-op.
func (s *Subject[T]) Send(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.value = v
	s.hasValue = true

	for id, ob := range s.observers {
		if ob.ctx.Err() != nil {
			delete(s.observers, id)
			continue
		}
		ob.next(v)
	}
}

// Value returns the most recent value and whether one has been observed.
func (s *Subject[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.hasValue
}

// Finish terminates the subject: every subscriber receives a finished
// completion and future subscribers complete immediately.
func (s *Subject[T]) Finish() {
	s.terminate(nil)
}

// Fail terminates the subject with err as the failure completion.
func (s *Subject[T]) Fail(err error) {
	s.terminate(err)
}

func (s *Subject[T]) terminate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	s.err = err

	for id, ob := range s.observers {
		delete(s.observers, id)
		if ob.ctx.Err() != nil {
			continue
		}
		ob.complete(err)
	}
}

// Observers returns the number of registered subscribers.
func (s *Subject[T]) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
