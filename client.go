package direct

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIVersion selects the delivery API version used in request paths.
type APIVersion string

// V1 is the current delivery API version.
const V1 APIVersion = "v1"

const defaultBaseURL = "https://api.uber.com"

// Client is the parent client for the delivery API. Resource sub-clients
// ([Client.Quotes], [Client.Deliveries]) share the parent's configuration
// and transport session; constructing one Client yields one connection
// pool for all of them.
//
// A Client is safe for concurrent use.
type Client struct {
	core *core

	Quotes     *QuotesClient
	Deliveries *DeliveriesClient
}

// New creates a Client scoped to one customer. The access token is
// attached as a bearer token to every request; obtain one via
// [FetchAccessToken]. An empty version defaults to [V1].
func New(customerID, accessToken string, version APIVersion, opts ...Option) (*Client, error) {
	if customerID == "" {
		return nil, errors.New("customer id must be set")
	}

	if accessToken == "" {
		return nil, errors.New("access token must be set")
	}

	if version == "" {
		version = V1
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// the timeout is applied only to a session the client constructs;
	// an externally supplied session or http.Client keeps its owner's
	// timeout untouched
	var session *resty.Client
	switch {
	case options.session != nil:
		session = options.session
	case options.httpClient != nil:
		session = resty.NewWithClient(options.httpClient)
	default:
		session = resty.New()
		session.SetTimeout(options.timeout)
	}

	baseURL := options.baseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &core{
		http:    session,
		apiRoot: joinPath(baseURL, string(version), "customers", customerID),
		token:   accessToken,
		opts:    options,
		sleep:   wait,
	}

	return &Client{
		core:       c,
		Quotes:     &QuotesClient{core: c},
		Deliveries: &DeliveriesClient{core: c},
	}, nil
}

// Do issues a request against an arbitrary endpoint under the customer
// root, for API surface not covered by the resource sub-clients. The
// path segments are escaped and joined onto the customer-scoped base
// path. The same retry behaviour as the sub-clients applies.
func (c *Client) Do(ctx context.Context, method string, body Body, opts *CallOptions, segments ...any) (Mapping, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}

	return c.core.do(ctx, method, segments, body, opts)
}
