package executor

import (
	"sync"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/common/validation"
	"github.com/gostreamlab/pulse/pkg/metrics"
)

// Executor runs functions on an execution context. Implementations must
// execute submitted functions in submission order (FIFO). The ReceiveOn
// operator relies on this to preserve value ordering across the hand-off.
type Executor interface {
	// Run schedules fn for execution. It may run fn inline or hand it to
	// another goroutine; either way fn runs after all previously submitted
	// functions have finished.
	Run(fn func())
}

// immediate runs functions inline on the calling goroutine.
type immediate struct{}

func (immediate) Run(fn func()) { fn() }

// Immediate returns an Executor that runs functions synchronously on the
// calling goroutine.
func Immediate() Executor {
	return immediate{}
}

// Config holds configuration options for a Serial executor.
type Config struct {
	// QueueSize is the maximum number of pending functions. Submissions
	// beyond it block until the worker drains the queue.
	QueueSize int

	// Name labels the executor in metrics. Defaults to "serial".
	Name string

	// Registry receives executor metrics. If nil, metrics.DefaultRegistry
	// is used.
	Registry *metrics.Registry
}

// DefaultQueueSize is the queue capacity used by NewSerial.
const DefaultQueueSize = 64

// Serial is a single-goroutine FIFO executor. It stands in for a UI-thread
// dispatcher: everything submitted through Run executes on one goroutine,
// in order.
type Serial struct {
	mu     sync.Mutex
	closed bool
	tasks  chan func()
	done   chan struct{}

	name string
	reg  *metrics.Registry
}

// NewSerial creates a Serial executor with the default queue size.
func NewSerial() *Serial {
	s, _ := NewSerialWithConfig(Config{QueueSize: DefaultQueueSize})
	return s
}

// NewSerialWithConfig creates a Serial executor with the given configuration.
func NewSerialWithConfig(config Config) (*Serial, error) {
	if err := validation.ValidatePositive("executor", "QueueSize", config.QueueSize); err != nil {
		return nil, err
	}

	name := config.Name
	if name == "" {
		name = "serial"
	}
	reg := config.Registry
	if reg == nil {
		reg = metrics.DefaultRegistry
	}

	s := &Serial{
		tasks: make(chan func(), config.QueueSize),
		done:  make(chan struct{}),
		name:  name,
		reg:   reg,
	}

	go s.loop()
	return s, nil
}

// loop is the worker goroutine. It drains the queue until Close.
func (s *Serial) loop() {
	defer close(s.done)
	for fn := range s.tasks {
		fn()
		s.reg.ExecutorTasks.WithLabelValues(s.name).Inc()
		s.reg.ExecutorQueueDepth.WithLabelValues(s.name).Set(float64(len(s.tasks)))
	}
}

// Run submits fn to the worker goroutine. Submissions are serialized, so
// FIFO order holds even when Run is called from multiple goroutines. After
// Close, fn is dropped.
func (s *Serial) Run(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.tasks <- fn
	s.reg.ExecutorQueueDepth.WithLabelValues(s.name).Set(float64(len(s.tasks)))
}

// TryRun submits fn without blocking. It returns ErrQueueFull when the
// queue is at capacity and ErrClosed after Close.
func (s *Serial) TryRun(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return perrors.ErrClosed
	}
	select {
	case s.tasks <- fn:
		s.reg.ExecutorQueueDepth.WithLabelValues(s.name).Set(float64(len(s.tasks)))
		return nil
	default:
		return perrors.ErrQueueFull
	}
}

// Close stops accepting work, waits for queued functions to finish, and
// stops the worker goroutine. Close is idempotent.
func (s *Serial) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.tasks)
	s.mu.Unlock()

	<-s.done
}

// Closed returns true if the executor has been closed.
func (s *Serial) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
