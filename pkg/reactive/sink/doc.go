// Package sink provides reusable terminal subscribers.
//
// Lines streams values as JSON lines into an io.Writer, flushing at
// completion. Collector accumulates values and the terminal event, with a
// Done channel for batch-style waiting:
//
//	c := sink.NewCollector[User]()
//	pipe.Subscribe(users, c)
//	<-c.Done()
//	fmt.Println(c.Values())
package sink
