package pipe

import "context"

// Basic in-memory sources. Collaborator-backed sources (HTTP, Redis, cron)
// live in the source package.

// Just emits a single value, then finishes.
func Just[T any](value T) Publisher[T] {
	return FromSlice([]T{value})
}

// FromSlice emits the slice elements in order, then finishes. Emission is
// synchronous; a cancelled subscription stops mid-slice.
func FromSlice[T any](values []T) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		for _, v := range values {
			if ctx.Err() != nil {
				return
			}
			next(v)
		}
		if ctx.Err() == nil {
			complete(nil)
		}
	})
}

// FromChannel emits values received from ch until it is closed, then
// finishes. Reading happens on a dedicated goroutine so Subscribe never
// blocks on a slow producer.
func FromChannel[T any](ch <-chan T) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-ch:
					if !ok {
						complete(nil)
						return
					}
					next(v)
				}
			}
		}()
	})
}

// Empty finishes immediately without emitting.
func Empty[T any]() Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		if ctx.Err() == nil {
			complete(nil)
		}
	})
}

// Fail fails immediately with err without emitting.
func Fail[T any](err error) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		if ctx.Err() == nil {
			complete(err)
		}
	})
}

// Deferred builds the publisher at subscribe time, once per run.
func Deferred[T any](build func() Publisher[T]) Publisher[T] {
	return PublisherFunc[T](func(ctx context.Context, next func(T), complete func(error)) {
		build().Emit(ctx, next, complete)
	})
}
