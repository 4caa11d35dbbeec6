package direct

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CallOptions carries the optional per-call inputs. The maps are treated
// as read-only; every call works on private copies.
type CallOptions struct {
	// Params are appended to the request URL as query parameters.
	Params map[string]string
	// Headers are merged into the request headers. Authorization is
	// always overridden with the configured bearer token; Accept
	// defaults to application/json unless supplied here.
	Headers map[string]string
}

// core is the shared request engine behind every resource sub-client. One
// instance, holding one resty session, is shared by all sub-clients
// spawned from a parent [Client].
type core struct {
	http    *resty.Client
	apiRoot string
	token   string
	opts    *Options

	// sleep is the backoff wait, replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func (c *core) get(ctx context.Context, opts *CallOptions, segments ...any) (Mapping, error) {
	return c.do(ctx, http.MethodGet, segments, nil, opts)
}

func (c *core) post(ctx context.Context, body Body, opts *CallOptions, segments ...any) (Mapping, error) {
	return c.do(ctx, http.MethodPost, segments, body, opts)
}

func (c *core) patch(ctx context.Context, body Body, opts *CallOptions, segments ...any) (Mapping, error) {
	return c.do(ctx, http.MethodPatch, segments, body, opts)
}

// do runs one logical call: a bounded retry loop around request. HTTP
// failures retry only when their status is in the configured retriable
// set; transport failures retry unless the caller's context is done; any
// other failure is fatal on the first attempt. At most maxRetries+1
// attempts are made and the most recent failure is the one returned.
func (c *core) do(ctx context.Context, method string, segments []any, body Body, opts *CallOptions) (Mapping, error) {
	endpoint := joinPath(c.apiRoot, segments...)

	for attempt := 0; ; attempt++ {
		result, err := c.request(ctx, method, endpoint, body, opts)
		if err == nil {
			return result, nil
		}

		var retryAfter string
		var httpErr *HTTPError
		switch {
		case errors.As(err, &httpErr):
			if !c.opts.retriableStatus(httpErr.StatusCode) {
				return nil, err
			}
			retryAfter = httpErr.Header.Get("Retry-After")
		case retriableTransport(ctx, err):
		default:
			return nil, err
		}

		if attempt == c.opts.maxRetries {
			c.opts.requestLogger.Errorf("%s %s: giving up after %d attempts: %v", method, endpoint, attempt+1, err)
			return nil, err
		}

		delay, ok := parseRetryAfter(retryAfter)
		if !ok {
			if retryAfter != "" {
				c.opts.requestLogger.Warnf("%s %s: ignoring malformed Retry-After header %q", method, endpoint, retryAfter)
			}
			delay = exponentialDelay(attempt, c.opts.jitterMax)
		}

		c.opts.requestLogger.Warnf("%s %s failed (attempt %d/%d), retrying in %s: %v",
			method, endpoint, attempt+1, c.opts.maxRetries+1, delay, err)

		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// request performs exactly one HTTP call. It never retries.
func (c *core) request(ctx context.Context, method, endpoint string, body Body, opts *CallOptions) (Mapping, error) {
	c.opts.requestLogger.Debugf("%s %s", method, endpoint)

	req := c.http.R().SetContext(ctx)

	var callerHeaders, params map[string]string
	if opts != nil {
		callerHeaders = opts.Headers
		params = opts.Params
	}

	headers := make(map[string]string, len(callerHeaders)+2)
	hasAccept := false
	for k, v := range callerHeaders {
		// the configured bearer token always wins
		if strings.EqualFold(k, "Authorization") {
			continue
		}
		headers[k] = v
		if strings.EqualFold(k, "Accept") {
			hasAccept = true
		}
	}
	headers["Authorization"] = "Bearer " + c.token
	if !hasAccept {
		headers["Accept"] = "application/json"
	}
	req.SetHeaders(headers)

	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	if body != nil {
		req.SetBody(body.payload())
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newHTTPError(resp)
	}

	if resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return Mapping{}, nil
	}

	var result Mapping
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%s %s: decoding response: %w", method, endpoint, err)
	}

	return result, nil
}

// wait blocks for the given delay or until the context is done, whichever
// comes first.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
