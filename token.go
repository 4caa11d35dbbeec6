package direct

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const (
	defaultOAuthURL = "https://auth.uber.com/oauth"
	oauthVersion    = "v2"
	tokenScope      = "eats.deliveries"
)

// TokenRequest carries the inputs to [FetchAccessToken].
type TokenRequest struct {
	ClientID     string
	ClientSecret string

	// URL overrides the OAuth endpoint root. Defaults to the production
	// authorization server.
	URL string

	// HTTPClient overrides the client used for the exchange. Defaults to
	// a fresh client with the standard timeout.
	HTTPClient *http.Client
}

// FetchAccessToken performs a one-shot OAuth2 client-credentials exchange
// and returns the bearer token for [New]. The exchange is never retried;
// any failure is returned immediately as a [*TokenError].
func FetchAccessToken(ctx context.Context, req TokenRequest) (string, error) {
	if req.ClientID == "" || req.ClientSecret == "" {
		return "", &TokenError{Err: errors.New("client id and client secret must be set")}
	}

	var session *resty.Client
	if req.HTTPClient != nil {
		session = resty.NewWithClient(req.HTTPClient)
	} else {
		session = resty.New().SetTimeout(defaultTimeout)
	}

	root := req.URL
	if root == "" {
		root = defaultOAuthURL
	}

	resp, err := session.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"scope":         tokenScope,
			"client_id":     req.ClientID,
			"client_secret": req.ClientSecret,
			"grant_type":    "client_credentials",
		}).
		Post(joinPath(root, oauthVersion, "token"))
	if err != nil {
		return "", &TokenError{Err: err}
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return "", &TokenError{Err: newHTTPError(resp)}
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", &TokenError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	if body.AccessToken == "" {
		return "", &TokenError{Err: errors.New("response missing access_token")}
	}

	return body.AccessToken, nil
}
