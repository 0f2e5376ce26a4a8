package pipe

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/metrics"
)

// subscription states
const (
	stateActive = iota
	stateCompleted
	stateCancelled
)

// gate is the per-subscription runtime. It serializes every downstream
// delivery under one mutex and owns the Active -> Completed | Cancelled
// transition, so a Release that races with an in-flight value blocks until
// that delivery has drained and nothing is delivered afterwards.
type gate struct {
	mu     sync.Mutex
	state  int
	cancel context.CancelFunc

	id   uuid.UUID
	name string
	log  zerolog.Logger
	reg  *metrics.Registry
}

func newGate(o options, cancel context.CancelFunc) *gate {
	g := &gate{
		cancel: cancel,
		id:     uuid.New(),
		name:   o.name,
		log:    o.log,
		reg:    o.reg,
	}

	if g.reg != nil {
		g.reg.SubscriptionsStarted.WithLabelValues(g.name).Inc()
		g.reg.SubscriptionsActive.WithLabelValues(g.name).Inc()
	}
	g.log.Debug().Stringer("subscription", g.id).Str("pipeline", g.name).
		Msg("subscription started")

	return g
}

// deliver runs fn (a single OnValue call) if the subscription is still
// active. Deliveries are serialized; a concurrent Release waits for the
// in-flight delivery before teardown proceeds.
func (g *gate) deliver(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != stateActive {
		return
	}
	fn()
	if g.reg != nil {
		g.reg.ValuesDelivered.WithLabelValues(g.name).Inc()
	}
}

// complete transitions to Completed and runs fn (the single OnCompletion
// call). Later completions and values are dropped. The subscription
// context is cancelled afterwards so upstream resources are released.
func (g *gate) complete(err error, fn func()) {
	g.mu.Lock()
	if g.state != stateActive {
		g.mu.Unlock()
		return
	}
	g.state = stateCompleted
	fn()
	g.mu.Unlock()

	outcome := metrics.OutcomeFinished
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	if g.reg != nil {
		g.reg.Completions.WithLabelValues(g.name, outcome).Inc()
		g.reg.SubscriptionsActive.WithLabelValues(g.name).Dec()
		if perrors.IsDecode(err) {
			g.reg.DecodeFailures.WithLabelValues(g.name).Inc()
		}
	}
	g.log.Debug().Stringer("subscription", g.id).Str("pipeline", g.name).
		Err(err).Msg("subscription completed")

	// Natural completion also tears down the source (aborts the HTTP
	// request body, stops tickers, unregisters subject observers).
	g.cancel()
}

// release transitions to Cancelled. Acquiring the mutex makes teardown a
// barrier against in-flight deliveries.
func (g *gate) release() {
	g.mu.Lock()
	if g.state != stateActive {
		g.mu.Unlock()
		return
	}
	g.state = stateCancelled
	g.mu.Unlock()

	if g.reg != nil {
		g.reg.Completions.WithLabelValues(g.name, metrics.OutcomeCancelled).Inc()
		g.reg.SubscriptionsActive.WithLabelValues(g.name).Dec()
	}
	g.log.Debug().Stringer("subscription", g.id).Str("pipeline", g.name).
		Msg("subscription cancelled")

	g.cancel()
}

func (g *gate) active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == stateActive
}

// Token is the caller-held handle for an active subscription. Releasing it
// severs the pipeline: the source is told to stop (in-flight HTTP requests
// are aborted) and no further values or completion reach the Subscriber.
type Token struct {
	g *gate
}

// ID returns the unique identity of this subscription.
func (t *Token) ID() uuid.UUID {
	return t.g.id
}

// Release cancels the subscription. It is idempotent, safe to call
// concurrently with in-flight delivery, and a no-op after the subscription
// has completed naturally.
//
// Release must not be called from within the Subscriber's own callbacks;
// release tokens from the owning component instead.
func (t *Token) Release() {
	t.g.release()
}

// Active returns true while the subscription has neither completed nor
// been cancelled.
func (t *Token) Active() bool {
	return t.g.active()
}

// options configures a subscription.
type options struct {
	name string
	log  zerolog.Logger
	reg  *metrics.Registry
}

// Option customizes a single Subscribe call.
type Option func(*options)

// WithName labels the subscription in logs and metrics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger routes subscription lifecycle logs to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithRegistry overrides the metrics registry. Passing nil disables
// metrics for this subscription.
func WithRegistry(reg *metrics.Registry) Option {
	return func(o *options) { o.reg = reg }
}

func defaultOptions() options {
	return options{
		name: "unnamed",
		log:  zerolog.Nop(),
		reg:  metrics.DefaultRegistry,
	}
}

// Subscribe attaches sub to p and starts the run. It never blocks the
// caller beyond synchronous emission of an already-materialized source;
// sources that perform I/O hand off to their own goroutines.
//
// The returned Token is the only way to stop delivery early. The runtime
// guarantees exactly one terminal event per subscription and nothing after
// cancellation, regardless of how p behaves.
func Subscribe[T any](p Publisher[T], sub Subscriber[T], opts ...Option) *Token {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := newGate(o, cancel)

	p.Emit(ctx,
		func(v T) {
			g.deliver(func() { sub.OnValue(v) })
		},
		func(err error) {
			c := Finished()
			if err != nil {
				c = Failure(err)
			}
			g.complete(err, func() { sub.OnCompletion(c) })
		},
	)

	return &Token{g: g}
}
