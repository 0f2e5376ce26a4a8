package source

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/reactive/pipe"
)

// Cron returns a publisher that emits the firing time on every tick of
// the given cron expression (standard five-field format plus the @every
// and @hourly style descriptors). The stream is infinite; it ends only
// when the subscription is released. An invalid expression fails the
// subscription immediately.
func Cron(spec string) pipe.Publisher[time.Time] {
	return pipe.PublisherFunc[time.Time](func(ctx context.Context, next func(time.Time), complete func(error)) {
		runner := cron.New()

		// cron fires jobs on fresh goroutines; serialize emissions so the
		// publisher contract (no concurrent next calls) holds even when a
		// tick overlaps a slow downstream.
		var mu sync.Mutex
		_, err := runner.AddFunc(spec, func() {
			mu.Lock()
			defer mu.Unlock()
			if ctx.Err() != nil {
				return
			}
			next(time.Now())
		})
		if err != nil {
			complete(perrors.NewValidationError("source", "spec", spec, err.Error()))
			return
		}

		runner.Start()
		go func() {
			<-ctx.Done()
			runner.Stop()
		}()
	})
}

// Ticker returns a publisher that emits the current time every interval.
// The stream is infinite; it ends only when the subscription is released.
func Ticker(interval time.Duration) pipe.Publisher[time.Time] {
	return pipe.PublisherFunc[time.Time](func(ctx context.Context, next func(time.Time), complete func(error)) {
		if interval <= 0 {
			complete(perrors.NewValidationError("source", "interval", interval, "must be positive"))
			return
		}

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					next(now)
				}
			}
		}()
	})
}
