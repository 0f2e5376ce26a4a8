/*
Package source provides publishers backed by external collaborators: the
HTTP transport, Redis Pub/Sub, and timers.

Subscribing to a source publisher triggers the external action: Fetch
issues its HTTP request, RedisChannel opens its Pub/Sub subscription, Cron
and Ticker start their clocks. Releasing the subscription token propagates
the cancellation into the collaborator: the HTTP request is aborted, the
Pub/Sub subscription is closed, the clock stops.

The fetch-decode-deliver shape:

	users := pipe.Decode[User](source.Fetch(url), pipe.JSON[User]())
	token := pipe.Subscribe(users, sink)

Event feeds:

	events := source.RedisChannel(client, "user-events")
	ticks := source.Ticker(time.Second)
	daily := source.Cron("0 9 * * *")

Collaborator failures (connection loss, non-2xx responses) surface as a
*errors.TransportError through the failure completion.
*/
package source
