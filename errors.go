package direct

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPError is returned for any response with a status code of 400 or
// above. It preserves the status, headers and raw body of the failed
// response so callers can inspect the API's error details.
type HTTPError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func newHTTPError(resp *resty.Response) *HTTPError {
	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header().Clone(),
		Body:       resp.Body(),
	}
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status %s (empty error body)", e.Status)
	}
	return fmt.Sprintf("unexpected status %s: %s", e.Status, e.Body)
}

// TokenError is returned by [FetchAccessToken] for any failure during the
// OAuth2 token exchange. It wraps the underlying cause, which is an
// [*HTTPError] when the authorization server rejected the request.
type TokenError struct {
	Err error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token exchange failed: %v", e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }
