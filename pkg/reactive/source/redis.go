package source

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/reactive/pipe"
)

// RedisConfig holds configuration options for a RedisChannel publisher.
type RedisConfig struct {
	// Logger receives subscription lifecycle logs. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// RedisChannel returns a publisher emitting the payload of every message
// published to the given Redis Pub/Sub channel. The stream is infinite:
// it ends only when the subscription is released or the connection is
// lost, the latter surfacing as a *TransportError failure.
//
// Payloads are opaque strings; stack CompactMap or Decode downstream to
// extract typed values.
func RedisChannel(client redis.UniversalClient, channel string) pipe.Publisher[string] {
	return RedisChannelWithConfig(client, channel, RedisConfig{})
}

// RedisChannelWithConfig is RedisChannel with an explicit logger.
func RedisChannelWithConfig(client redis.UniversalClient, channel string, config RedisConfig) pipe.Publisher[string] {
	log := config.Logger

	return pipe.PublisherFunc[string](func(ctx context.Context, next func(string), complete func(error)) {
		sub := client.Subscribe(ctx, channel)

		go func() {
			defer func() { _ = sub.Close() }()

			log.Debug().Str("channel", channel).Msg("redis subscription started")
			messages := sub.Channel()

			for {
				select {
				case <-ctx.Done():
					log.Debug().Str("channel", channel).Msg("redis subscription released")
					return
				case msg, ok := <-messages:
					if !ok {
						// The client closed the connection underneath us.
						complete(perrors.NewTransportError("redis:"+channel, 0, perrors.ErrClosed))
						return
					}
					next(msg.Payload)
				}
			}
		}()
	})
}
