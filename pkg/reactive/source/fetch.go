package source

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/reactive/pipe"
)

// FetchConfig holds configuration options for a Fetch publisher.
type FetchConfig struct {
	// Client issues the request. If nil, a client with a 30s timeout is used.
	Client *http.Client

	// Logger receives request lifecycle logs. Defaults to a no-op logger.
	Logger zerolog.Logger
}

const defaultFetchTimeout = 30 * time.Second

// Fetch returns a publisher that GETs url when subscribed, emits the
// response body once, then finishes. Each subscription issues an
// independent request; releasing the token aborts the in-flight request.
//
// Transport failures and non-2xx responses surface as a *TransportError
// through the failure completion, never as a panic or a synchronous error.
func Fetch(url string) pipe.Publisher[[]byte] {
	return FetchWithConfig(url, FetchConfig{})
}

// FetchWithConfig is Fetch with an explicit client and logger.
func FetchWithConfig(url string, config FetchConfig) pipe.Publisher[[]byte] {
	client := config.Client
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	log := config.Logger

	return pipe.PublisherFunc[[]byte](func(ctx context.Context, next func([]byte), complete func(error)) {
		go func() {
			log.Debug().Str("url", url).Msg("fetch started")

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				complete(perrors.NewTransportError(url, 0, err))
				return
			}

			resp, err := client.Do(req)
			if err != nil {
				if ctx.Err() != nil {
					// Subscription released; nobody is listening.
					return
				}
				log.Debug().Str("url", url).Err(err).Msg("fetch failed")
				complete(perrors.NewTransportError(url, 0, err))
				return
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				complete(perrors.NewTransportError(url, resp.StatusCode, err))
				return
			}

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("fetch rejected")
				complete(perrors.NewTransportError(url, resp.StatusCode, nil))
				return
			}

			log.Debug().Str("url", url).Int("bytes", len(body)).Msg("fetch finished")
			next(body)
			complete(nil)
		}()
	})
}
