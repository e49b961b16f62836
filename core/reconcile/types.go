package reconcile

import "time"

// InventoryItem is one entry of a remote inventory snapshot.
// It is owned by the inventory system and never mutated here.
type InventoryItem struct {
	// ID is the stable identity assigned by the inventory system.
	ID string `json:"id"`

	// SKU is the catalog code at snapshot time.
	SKU string `json:"sku"`

	// Quantity is the on-hand count at snapshot time.
	Quantity int `json:"quantity"`
}

// OrderDraft describes a replenishment order before the ledger assigns its identity.
type OrderDraft struct {
	ItemID          string
	SKU             string
	QuantityToOrder int
}

// Order is a replenishment order recorded in the ledger.
type Order struct {
	// ID is assigned by the ledger at creation and never reused.
	ID string `json:"id"`

	// ItemID references InventoryItem.ID from the snapshot the order was created from.
	ItemID string `json:"itemId"`

	// SKU is copied from the snapshot at creation time.
	SKU string `json:"sku"`

	// QuantityToOrder is threshold minus the snapshot quantity.
	QuantityToOrder int `json:"quantityToOrder"`

	// CreatedAt is the ledger insertion time.
	CreatedAt time.Time `json:"-"`
}

// PassResult summarizes one reconciliation pass for logging and metrics.
type PassResult struct {
	PassID     string
	Threshold  int
	Scanned    int
	Qualifying int
	Created    int
	Elapsed    time.Duration
	Kind       ErrorKind
}

// Outcome returns the metric label for the pass.
func (r PassResult) Outcome() string {
	if r.Kind == KindNone {
		return "success"
	}
	return string(r.Kind)
}
