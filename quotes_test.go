package direct

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestQuotesCreate(t *testing.T) {
	t.Parallel()

	var path, method string
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		method = r.Method
		body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "quo-1", "fee": 525}`))
	}))
	defer server.Close()

	c, _ := newTestClient(t, server.URL)

	result, err := c.Quotes.Create(context.Background(), &QuoteRequest{
		PickupAddress:  "100 Maiden Ln, New York, NY 10038",
		DropoffAddress: "30 Hudson Yards, New York, NY 10001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("expected POST, got %s", method)
	}

	if path != "/v1/customers/cust-123/delivery_quotes" {
		t.Errorf("unexpected path: %s", path)
	}

	if result["id"] != "quo-1" {
		t.Errorf("expected id=quo-1, got %v", result["id"])
	}

	var sent map[string]any
	if err := json.Unmarshal(body, &sent); err != nil {
		t.Fatalf("failed to parse request body: %v", err)
	}

	if sent["pickup_address"] != "100 Maiden Ln, New York, NY 10038" {
		t.Errorf("unexpected pickup_address: %v", sent["pickup_address"])
	}

	// unset optional fields must not be serialized
	if _, ok := sent["pickup_latitude"]; ok {
		t.Error("expected unset pickup_latitude to be omitted")
	}

	if strings.Contains(string(body), "manifest_total_value") {
		t.Error("expected unset manifest_total_value to be omitted")
	}
}
