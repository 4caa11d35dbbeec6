package direct

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAccessToken_Success(t *testing.T) {
	t.Parallel()

	var path, grantType, scope, clientID, clientSecret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = r.ParseForm()
		grantType = r.PostFormValue("grant_type")
		scope = r.PostFormValue("scope")
		clientID = r.PostFormValue("client_id")
		clientSecret = r.PostFormValue("client_secret")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "jwt-token", "expires_in": 2592000}`))
	}))
	defer server.Close()

	token, err := FetchAccessToken(context.Background(), TokenRequest{
		ClientID:     "my-id",
		ClientSecret: "my-secret",
		URL:          server.URL,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token != "jwt-token" {
		t.Errorf("expected token=jwt-token, got %q", token)
	}

	if path != "/v2/token" {
		t.Errorf("expected path=/v2/token, got %s", path)
	}

	if grantType != "client_credentials" {
		t.Errorf("expected grant_type=client_credentials, got %q", grantType)
	}

	if scope != "eats.deliveries" {
		t.Errorf("expected scope=eats.deliveries, got %q", scope)
	}

	if clientID != "my-id" || clientSecret != "my-secret" {
		t.Errorf("expected credentials to be sent, got id=%q secret=%q", clientID, clientSecret)
	}
}

func TestFetchAccessToken_UnauthorizedNoRetry(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid_client"}`))
	}))
	defer server.Close()

	_, err := FetchAccessToken(context.Background(), TokenRequest{
		ClientID:     "my-id",
		ClientSecret: "bad-secret",
		URL:          server.URL,
	})

	if err == nil {
		t.Fatal("expected error for 401")
	}

	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts)
	}

	var tokenErr *TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("expected *TokenError, got %T: %v", err, err)
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected wrapped *HTTPError, got %v", err)
	}

	if httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", httpErr.StatusCode)
	}
}

func TestFetchAccessToken_MissingToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type": "Bearer"}`))
	}))
	defer server.Close()

	_, err := FetchAccessToken(context.Background(), TokenRequest{
		ClientID:     "my-id",
		ClientSecret: "my-secret",
		URL:          server.URL,
	})

	if err == nil {
		t.Fatal("expected error for missing access_token")
	}

	var tokenErr *TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("expected *TokenError, got %T", err)
	}
}

func TestFetchAccessToken_MissingCredentials(t *testing.T) {
	t.Parallel()

	_, err := FetchAccessToken(context.Background(), TokenRequest{})

	if err == nil {
		t.Fatal("expected error for missing credentials")
	}

	var tokenErr *TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("expected *TokenError, got %T", err)
	}
}
