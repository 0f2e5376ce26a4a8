package pipe

import "context"

// Publisher represents a cold description of a value-over-time source.
// Nothing happens until Emit is called; each call is an independent run,
// so the same Publisher may be subscribed to any number of times.
//
// Implementations call next for each value and complete for the single
// terminal event: complete(nil) for a finished stream, complete(err) for a
// failure. They must stop emitting when ctx is done. next and complete may
// be called from any goroutine, but never concurrently, and never after
// complete has been called.
//
// Callers normally do not invoke Emit directly; Subscribe wires a
// Subscriber to a Publisher and enforces the terminal-event guarantees
// even against a misbehaving implementation.
type Publisher[T any] interface {
	Emit(ctx context.Context, next func(T), complete func(error))
}

// PublisherFunc implements Publisher with a function, the convenient way
// to define operators and small sources without a new type.
type PublisherFunc[T any] func(ctx context.Context, next func(T), complete func(error))

// Emit implements the Publisher interface.
func (f PublisherFunc[T]) Emit(ctx context.Context, next func(T), complete func(error)) {
	f(ctx, next, complete)
}

// Completion is the terminal signal of a subscription: either finished or
// a typed failure. Exactly one Completion reaches a Subscriber per
// subscription, unless the subscription is cancelled first.
type Completion struct {
	err error
}

// Finished reports a successful terminal event.
func Finished() Completion {
	return Completion{}
}

// Failure reports a failed terminal event carrying err.
func Failure(err error) Completion {
	return Completion{err: err}
}

// Failed returns true if the completion carries a failure.
func (c Completion) Failed() bool {
	return c.err != nil
}

// Err returns the failure, or nil for a finished completion.
func (c Completion) Err() error {
	return c.err
}

// Subscriber is the terminal sink of a pipeline. The runtime guarantees
// OnCompletion is invoked at most once, after all OnValue invocations have
// ceased, and that neither is invoked after cancellation.
type Subscriber[T any] interface {
	OnValue(T)
	OnCompletion(Completion)
}

// sink adapts a pair of callbacks to the Subscriber interface.
type sink[T any] struct {
	onValue      func(T)
	onCompletion func(Completion)
}

// NewSink creates a Subscriber from value and completion callbacks.
// Either callback may be nil.
func NewSink[T any](onValue func(T), onCompletion func(Completion)) Subscriber[T] {
	return &sink[T]{onValue: onValue, onCompletion: onCompletion}
}

func (s *sink[T]) OnValue(v T) {
	if s.onValue != nil {
		s.onValue(v)
	}
}

func (s *sink[T]) OnCompletion(c Completion) {
	if s.onCompletion != nil {
		s.onCompletion(c)
	}
}
