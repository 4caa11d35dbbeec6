package direct

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultJitterMax  = 500 * time.Millisecond
	defaultMaxRetries = 3

	maxTimeout   = 5 * time.Minute
	maxJitterMax = 1 * time.Minute
	maxRetryCap  = 100
)

type Option func(*Options)

type Options struct {
	timeout              time.Duration
	jitterMax            time.Duration
	maxRetries           int
	retriableStatusCodes map[int]struct{}
	requestLogger        RequestLogger
	httpClient           *http.Client
	session              *resty.Client
	baseURL              string
}

func newClientOptions() *Options {
	return &Options{
		timeout:       defaultTimeout,
		jitterMax:     defaultJitterMax,
		maxRetries:    defaultMaxRetries,
		requestLogger: &NoopLogger{},
		retriableStatusCodes: map[int]struct{}{
			http.StatusUnauthorized:        {},
			http.StatusTooManyRequests:     {},
			http.StatusInternalServerError: {},
			http.StatusBadGateway:          {},
			http.StatusServiceUnavailable:  {},
			http.StatusGatewayTimeout:      {},
		},
	}
}

func (o *Options) Validate() error {
	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.timeout > maxTimeout {
		return fmt.Errorf("timeout must not exceed %s", maxTimeout)
	}

	if o.jitterMax < 0 {
		return errors.New("jitterMax must be non-negative")
	}

	if o.jitterMax > maxJitterMax {
		return fmt.Errorf("jitterMax must not exceed %s", maxJitterMax)
	}

	if o.maxRetries < 0 {
		return errors.New("maxRetries must be non-negative")
	}

	if o.maxRetries > maxRetryCap {
		return fmt.Errorf("maxRetries must not exceed %d", maxRetryCap)
	}

	if o.retriableStatusCodes == nil {
		return errors.New("retriableStatusCodes must not be nil")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.httpClient != nil && o.session != nil {
		return errors.New("cannot use both WithHTTPClient and WithSession - choose one")
	}

	return nil
}

// WithTimeout sets the per-request timeout. Defaults to 10s. Ignored
// when the transport is supplied via [WithSession] or [WithHTTPClient];
// the supplied transport's own timeout applies then.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithJitterMax sets the upper bound of the random jitter added to the
// computed exponential backoff. Defaults to 500ms.
func WithJitterMax(jitterMax time.Duration) Option {
	return func(o *Options) {
		if jitterMax >= 0 {
			o.jitterMax = jitterMax
		}
	}
}

// WithMaxRetries sets the retry budget: the maximum number of retries
// after the initial attempt. Defaults to 3.
func WithMaxRetries(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.maxRetries = count
		}
	}
}

// WithRetriableStatusCodes replaces the set of HTTP status codes that are
// retried. Passing no codes disables retries on HTTP errors entirely;
// transport-level failures are still retried. Codes below 400 are ignored.
func WithRetriableStatusCodes(codes ...int) Option {
	return func(o *Options) {
		set := make(map[int]struct{}, len(codes))
		for _, code := range codes {
			if code >= 400 {
				set[code] = struct{}{}
			}
		}
		o.retriableStatusCodes = set
	}
}

// WithRequestLogger sets the logger used for request and retry
// diagnostics. Defaults to [NoopLogger].
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithHTTPClient supplies the [http.Client] used for all requests. Useful
// for custom transports or proxies. The supplied client is never mutated,
// so its own Timeout governs requests. Mutually exclusive with
// [WithSession].
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithSession supplies an externally owned resty client. Pass the same
// session to several parent clients to share one connection pool across
// all of them. The session is never reconfigured, so its own timeout
// governs requests. Mutually exclusive with [WithHTTPClient].
func WithSession(session *resty.Client) Option {
	return func(o *Options) {
		if session != nil {
			o.session = session
		}
	}
}

// WithBaseURL overrides the API root, e.g. to target a sandbox
// environment.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}
