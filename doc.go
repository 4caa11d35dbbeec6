// Package direct provides an HTTP client for the Uber Direct delivery API.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries,
// exponential backoff with jitter, and pluggable logging. All resource
// sub-clients spawned from one parent [Client] share a single underlying
// transport so connection pooling stays effective.
//
// # Basic Usage
//
//	token, err := direct.FetchAccessToken(ctx, direct.TokenRequest{
//	    ClientID:     "my-client-id",
//	    ClientSecret: "my-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := direct.New("customer-id", token, direct.V1,
//	    direct.WithMaxRetries(5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	quote, err := c.Quotes.Create(ctx, &direct.QuoteRequest{
//	    PickupAddress:  "100 Maiden Ln, New York, NY 10038",
//	    DropoffAddress: "30 Hudson Yards, New York, NY 10001",
//	})
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated before [New] returns.
//
// # Retry Behaviour
//
// Requests that fail with a status code in the retriable set (by default
// 401, 429, 500, 502, 503 and 504) or with a transport-level error are
// retried up to the configured retry budget, waiting min(2^attempt, 20s)
// plus a uniformly random jitter between attempts. A Retry-After response
// header carrying a plain number of seconds takes precedence over the
// computed backoff. Non-retriable failures and context cancellation
// surface immediately. The failure returned after an exhausted budget is
// always the last one observed.
//
// # Authentication
//
// Every request carries "Authorization: Bearer <token>". Tokens are
// obtained out of band via [FetchAccessToken], a one-shot OAuth2
// client-credentials exchange that is never retried.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewZerologLogger] for a
// ready-made zerolog adapter. The default [NoopLogger] discards all log
// output.
package direct
