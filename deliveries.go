package direct

import "context"

// DeliveriesClient exposes the delivery endpoints. Obtain it from
// [Client.Deliveries]; it shares the parent's transport and retry
// behaviour.
type DeliveriesClient struct {
	core *core
}

// Create creates a delivery.
func (c *DeliveriesClient) Create(ctx context.Context, req *DeliveryRequest) (Mapping, error) {
	return c.core.post(ctx, req, nil, "deliveries")
}

// List returns the customer's deliveries. Filter and pagination
// parameters (e.g. "limit", "offset", "filter") are passed as query
// parameters.
func (c *DeliveriesClient) List(ctx context.Context, params map[string]string) (Mapping, error) {
	return c.core.get(ctx, &CallOptions{Params: params}, "deliveries")
}

// Get returns a single delivery by id.
func (c *DeliveriesClient) Get(ctx context.Context, deliveryID string) (Mapping, error) {
	return c.core.get(ctx, nil, "deliveries", deliveryID)
}

// Update modifies an in-flight delivery.
func (c *DeliveriesClient) Update(ctx context.Context, deliveryID string, req *DeliveryUpdate) (Mapping, error) {
	return c.core.patch(ctx, req, nil, "deliveries", deliveryID)
}

// Cancel cancels a delivery.
func (c *DeliveriesClient) Cancel(ctx context.Context, deliveryID string) (Mapping, error) {
	return c.core.post(ctx, nil, nil, "deliveries", deliveryID, "cancel")
}

// ProofOfDelivery retrieves a proof-of-delivery artifact for a completed
// delivery.
func (c *DeliveriesClient) ProofOfDelivery(ctx context.Context, deliveryID string, req *ProofOfDeliveryRequest) (Mapping, error) {
	return c.core.post(ctx, req, nil, "deliveries", deliveryID, "proof-of-delivery")
}
