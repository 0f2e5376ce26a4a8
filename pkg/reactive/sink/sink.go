package sink

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/gostreamlab/pulse/pkg/reactive/pipe"
)

// Lines is a terminal subscriber that encodes every value as one JSON
// line into a buffered writer, flushing when the pipeline completes.
// The first write error is retained and later values are dropped.
type Lines[T any] struct {
	mu  sync.Mutex
	w   *bufio.Writer
	enc *json.Encoder
	err error
}

// NewLines creates a Lines sink writing to w.
func NewLines[T any](w io.Writer) *Lines[T] {
	bw := bufio.NewWriter(w)
	return &Lines[T]{w: bw, enc: json.NewEncoder(bw)}
}

// OnValue implements pipe.Subscriber. Encode appends a trailing newline,
// giving one value per line.
func (l *Lines[T]) OnValue(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return
	}
	l.err = l.enc.Encode(v)
}

// OnCompletion implements pipe.Subscriber, flushing buffered output.
func (l *Lines[T]) OnCompletion(pipe.Completion) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.w.Flush(); err != nil && l.err == nil {
		l.err = err
	}
}

// Err returns the first write or flush error, if any.
func (l *Lines[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Collector is a terminal subscriber that accumulates values and the
// completion. Done is closed when the completion arrives, which makes it
// convenient for batch pipelines and tests.
type Collector[T any] struct {
	mu         sync.Mutex
	values     []T
	completion pipe.Completion
	completed  bool
	done       chan struct{}
}

// NewCollector creates an empty Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{done: make(chan struct{})}
}

// OnValue implements pipe.Subscriber.
func (c *Collector[T]) OnValue(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

// OnCompletion implements pipe.Subscriber.
func (c *Collector[T]) OnCompletion(comp pipe.Completion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completed {
		return
	}
	c.completed = true
	c.completion = comp
	close(c.done)
}

// Values returns a copy of the values collected so far.
func (c *Collector[T]) Values() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.values...)
}

// Completion returns the terminal event and whether it has arrived.
func (c *Collector[T]) Completion() (pipe.Completion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completion, c.completed
}

// Done is closed once the pipeline has completed. A cancelled pipeline
// never closes it.
func (c *Collector[T]) Done() <-chan struct{} {
	return c.done
}
