package pipe

import (
	"context"
	"encoding/json"
	"sync/atomic"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/scheduling/executor"
)

// Operators are free generic functions rather than methods: Go methods
// cannot introduce new type parameters, so a method-chained Map could not
// change the element type.

// Map transforms each upstream value with a total function, forwarding
// failures and completion unchanged.
func Map[In, Out any](upstream Publisher[In], transform func(In) Out) Publisher[Out] {
	return PublisherFunc[Out](func(ctx context.Context, next func(Out), complete func(error)) {
		upstream.Emit(ctx,
			func(v In) { next(transform(v)) },
			complete,
		)
	})
}

// CompactMap transforms each upstream value with a partial function,
// dropping values for which ok is false. Filter-and-convert in one step.
func CompactMap[In, Out any](upstream Publisher[In], transform func(In) (Out, bool)) Publisher[Out] {
	return PublisherFunc[Out](func(ctx context.Context, next func(Out), complete func(error)) {
		upstream.Emit(ctx,
			func(v In) {
				if out, ok := transform(v); ok {
					next(out)
				}
			},
			complete,
		)
	})
}

// Filter forwards only the upstream values matching predicate.
func Filter[T any](upstream Publisher[T], predicate func(T) bool) Publisher[T] {
	return CompactMap(upstream, func(v T) (T, bool) {
		return v, predicate(v)
	})
}

// DecodeFunc converts raw bytes to a value, or reports why it cannot.
type DecodeFunc[T any] func([]byte) (T, error)

// JSON returns a DecodeFunc backed by encoding/json.
func JSON[T any]() DecodeFunc[T] {
	return func(data []byte) (T, error) {
		var v T
		err := json.Unmarshal(data, &v)
		return v, err
	}
}

// Decode converts each upstream byte payload with decode. The first
// failure terminates the pipeline with a DecodeError: upstream is
// cancelled and no further values are delivered.
func Decode[Out any](upstream Publisher[[]byte], decode DecodeFunc[Out]) Publisher[Out] {
	return PublisherFunc[Out](func(ctx context.Context, next func(Out), complete func(error)) {
		ctx, cancel := context.WithCancel(ctx)

		var done atomic.Bool
		upstream.Emit(ctx,
			func(data []byte) {
				if done.Load() {
					return
				}
				v, err := decode(data)
				if err != nil {
					done.Store(true)
					cancel()
					complete(perrors.NewDecodeError(err))
					return
				}
				next(v)
			},
			func(err error) {
				if done.Swap(true) {
					return
				}
				cancel()
				complete(err)
			},
		)
	})
}

// ReceiveOn re-schedules value and completion delivery onto ex before they
// reach the next stage. Ordering is preserved: the executor contract is
// FIFO execution of submitted functions.
func ReceiveOn[T any](upstream Publisher[T], ex executor.Executor) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		upstream.Emit(ctx,
			func(v T) {
				ex.Run(func() { next(v) })
			},
			func(err error) {
				ex.Run(func() { complete(err) })
			},
		)
	})
}

// First forwards the first upstream value, then completes and cancels
// upstream. An empty upstream completes empty-handed with upstream's own
// terminal event.
func First[T any](upstream Publisher[T]) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		ctx, cancel := context.WithCancel(ctx)

		var done atomic.Bool
		upstream.Emit(ctx,
			func(v T) {
				if done.Swap(true) {
					return
				}
				next(v)
				complete(nil)
				cancel()
			},
			func(err error) {
				if done.Swap(true) {
					return
				}
				cancel()
				complete(err)
			},
		)
	})
}
