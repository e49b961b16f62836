package ledger

import (
	"time"

	"replenishment-service/core/reconcile"
)

// OrderRecord is the persisted form of a replenishment order.
type OrderRecord struct {
	ID              string    `gorm:"column:id;primaryKey;size:36"`
	ItemID          string    `gorm:"column:item_id;size:64;not null;index"`
	SKU             string    `gorm:"column:sku;size:128;not null"`
	QuantityToOrder int       `gorm:"column:quantity_to_order;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;index"`
}

// TableName overrides the table name used by OrderRecord.
func (OrderRecord) TableName() string {
	return "replenishment_orders"
}

func (r OrderRecord) toOrder() reconcile.Order {
	return reconcile.Order{
		ID:              r.ID,
		ItemID:          r.ItemID,
		SKU:             r.SKU,
		QuantityToOrder: r.QuantityToOrder,
		CreatedAt:       r.CreatedAt,
	}
}
