package direct

import "context"

// QuotesClient exposes the delivery-quote endpoints. Obtain it from
// [Client.Quotes]; it shares the parent's transport and retry behaviour.
type QuotesClient struct {
	core *core
}

// Create requests a delivery quote for a pickup/dropoff pair. The quote
// id in the result can be passed in [DeliveryRequest.QuoteID] to lock in
// the quoted price.
func (c *QuotesClient) Create(ctx context.Context, req *QuoteRequest) (Mapping, error) {
	return c.core.post(ctx, req, nil, "delivery_quotes")
}
