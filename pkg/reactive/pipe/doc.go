/*
Package pipe implements the reactive stream core of pulse: cold publishers,
composable operators, terminal subscribers, and caller-held cancellation
tokens.

Core Concepts:

A Publisher is a lazy, cold description of a stream of values. Nothing
happens until a Subscriber attaches; each subscription is an independent
run, so a Publisher may be subscribed to any number of times. A run pushes
zero or more values downstream and ends with exactly one terminal event: a
finished completion or a typed failure. There is no backpressure; values
are pushed eagerly as the source produces them.

Basic Usage:

	lengths := pipe.CompactMap(
		pipe.FromSlice([]string{"a", "bc", ""}),
		func(s string) (int, bool) { return len(s), s != "" },
	)

	token := pipe.Subscribe(lengths, pipe.NewSink(
		func(n int) { fmt.Println(n) },
		func(c pipe.Completion) { fmt.Println("failed:", c.Failed()) },
	))
	defer token.Release()

Operators:

Operators are free generic functions taking and returning Publishers, so
chains are built by composition rather than method calls:

	// Transform every value (total function)
	pipe.Map(p, strconv.Itoa)

	// Filter-and-convert in one step (partial function)
	pipe.CompactMap(p, parsePort)

	// Keep matching values
	pipe.Filter(p, func(n int) bool { return n > 0 })

	// Convert raw bytes; first failure is terminal
	pipe.Decode[User](body, pipe.JSON[User]())

	// Re-schedule delivery onto another execution context
	pipe.ReceiveOn(p, ui)

	// Take the first value, then stop upstream
	pipe.First(p)

Cancellation:

Subscribe returns a Token. Releasing it severs the pipeline: the source is
told to stop (an in-flight HTTP request is aborted) and the Subscriber
sees nothing further, not even a completion. Release is idempotent and a
no-op after natural completion. Components holding several subscriptions
collect their tokens in a Bag and release them together at teardown:

	var bag pipe.Bag
	bag.Add(pipe.Subscribe(a, sinkA))
	bag.Add(pipe.Subscribe(b, sinkB))
	defer bag.Release()

Subjects:

A Subject bridges imperative code and a pipeline: Send pushes a value to
every active subscriber. NewValueSubject replays the current value to new
subscribers, which is the shape of a bound UI property:

	query := pipe.NewValueSubject("")
	results := pipe.CompactMap(query, lookup)
	// elsewhere: query.Send(textField.Text)

Guarantees:

  - Exactly one terminal event per subscription; no values after it.
  - Cancellation pre-empts completion and propagates upstream.
  - Per-subscription delivery is serialized and FIFO, including across
    ReceiveOn hand-offs.
  - A Release racing an in-flight value delivers that value zero or one
    times, never after teardown has begun.

Failures never escape a pipeline as panics or synchronous errors from
Subscribe; the Subscriber's failure completion is the single place an
error becomes observable. There is no built-in retry; callers re-subscribe.
*/
package pipe
