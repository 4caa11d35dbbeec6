package direct

// Body is a request payload: either a typed request model or a plain
// [Mapping] passed through as-is. Typed models serialize to their
// canonical JSON form with unset optional fields omitted.
type Body interface {
	payload() any
}

// Mapping is an arbitrary JSON object. It is the result type of every
// call, and doubles as the pass-through [Body] for endpoints without a
// typed request model.
type Mapping map[string]any

func (m Mapping) payload() any { return m }

// QuoteRequest is the payload for [QuotesClient.Create].
type QuoteRequest struct {
	PickupAddress    string   `json:"pickup_address"`
	DropoffAddress   string   `json:"dropoff_address"`
	PickupLatitude   *float64 `json:"pickup_latitude,omitempty"`
	PickupLongitude  *float64 `json:"pickup_longitude,omitempty"`
	DropoffLatitude  *float64 `json:"dropoff_latitude,omitempty"`
	DropoffLongitude *float64 `json:"dropoff_longitude,omitempty"`
	PickupReady      string   `json:"pickup_ready_dt,omitempty"`
	PickupDeadline   string   `json:"pickup_deadline_dt,omitempty"`
	DropoffReady     string   `json:"dropoff_ready_dt,omitempty"`
	DropoffDeadline  string   `json:"dropoff_deadline_dt,omitempty"`
	PickupPhone      string   `json:"pickup_phone_number,omitempty"`
	DropoffPhone     string   `json:"dropoff_phone_number,omitempty"`
	ManifestValue    *int     `json:"manifest_total_value,omitempty"`
	ExternalStoreID  string   `json:"external_store_id,omitempty"`
}

func (r *QuoteRequest) payload() any { return r }

// ManifestItem describes one item in a delivery manifest.
type ManifestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Price    *int   `json:"price,omitempty"`
}

// DeliveryRequest is the payload for [DeliveriesClient.Create].
type DeliveryRequest struct {
	PickupName      string         `json:"pickup_name"`
	PickupAddress   string         `json:"pickup_address"`
	PickupPhone     string         `json:"pickup_phone_number"`
	DropoffName     string         `json:"dropoff_name"`
	DropoffAddress  string         `json:"dropoff_address"`
	DropoffPhone    string         `json:"dropoff_phone_number"`
	ManifestItems   []ManifestItem `json:"manifest_items"`
	QuoteID         string         `json:"quote_id,omitempty"`
	ExternalID      string         `json:"external_id,omitempty"`
	PickupNotes     string         `json:"pickup_notes,omitempty"`
	DropoffNotes    string         `json:"dropoff_notes,omitempty"`
	DropoffSeller   string         `json:"dropoff_seller_notes,omitempty"`
	Tip             *int           `json:"tip,omitempty"`
	ManifestValue   *int           `json:"manifest_total_value,omitempty"`
	ExternalStoreID string         `json:"external_store_id,omitempty"`
}

func (r *DeliveryRequest) payload() any { return r }

// DeliveryUpdate is the payload for [DeliveriesClient.Update]. All fields
// are optional; only the set ones are sent.
type DeliveryUpdate struct {
	PickupNotes     string `json:"pickup_notes,omitempty"`
	DropoffNotes    string `json:"dropoff_notes,omitempty"`
	DropoffSeller   string `json:"dropoff_seller_notes,omitempty"`
	TipByCustomer   *int   `json:"tip_by_customer,omitempty"`
	PickupReady     string `json:"pickup_ready_dt,omitempty"`
	PickupDeadline  string `json:"pickup_deadline_dt,omitempty"`
	DropoffReady    string `json:"dropoff_ready_dt,omitempty"`
	DropoffDeadline string `json:"dropoff_deadline_dt,omitempty"`
}

func (r *DeliveryUpdate) payload() any { return r }

// ProofOfDeliveryRequest is the payload for
// [DeliveriesClient.ProofOfDelivery].
type ProofOfDeliveryRequest struct {
	Waypoint string `json:"waypoint"`
	Type     string `json:"type"`
}

func (r *ProofOfDeliveryRequest) payload() any { return r }
