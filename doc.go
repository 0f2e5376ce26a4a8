/*
Package pulse provides a small reactive stream core for Go: cold publishers,
composable operators, terminal subscribers, and caller-held cancellation
tokens.

Reactive core (pkg/reactive):
  - pipe: Publisher/Subscriber contract, Map/CompactMap/Decode/ReceiveOn
    operators, cancellation tokens, token bags, subjects
  - source: collaborator-backed publishers (HTTP fetch, Redis Pub/Sub,
    cron schedules, tickers)
  - sink: terminal subscribers (JSON line writer, collector)

Scheduling (pkg/scheduling):
  - executor: execution contexts for ReceiveOn (immediate, serial FIFO)

Observability (pkg/metrics): Prometheus instrumentation for subscription
lifecycle and value delivery.

Example usage:

	import (
		"github.com/gostreamlab/pulse/pkg/reactive/pipe"
		"github.com/gostreamlab/pulse/pkg/reactive/source"
	)

	users := pipe.Decode[User](source.Fetch(url), pipe.JSON[User]())
	token := pipe.Subscribe(users, pipe.NewSink(
		func(u User) { fmt.Println(u.Name) },
		func(c pipe.Completion) { fmt.Println("done:", c.Err()) },
	))
	defer token.Release()
*/
package pulse
