package direct

import (
	"context"
	"errors"
	"net"
	"net/url"
)

// retriableTransport reports whether a failure that is not an HTTP error
// should be retried. Only transport-level failures (connection refused,
// reset, per-request timeout) qualify; a response decode failure or a
// request body that cannot be marshalled is deterministic, and retrying
// would only burn the budget. Cancellation of the caller's context is
// never retried.
func retriableTransport(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// retriableStatus reports whether an HTTP failure with the given status
// code is in the configured retriable set.
func (o *Options) retriableStatus(code int) bool {
	_, ok := o.retriableStatusCodes[code]
	return ok
}
