package models

import "time"

// ShopItem is a catalog entry. Items are immutable once created.
type ShopItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Asset     []byte    `json:"asset,omitempty"` // opaque payload, base64 in JSON
	Price     int       `json:"price"`
	MinTitle  Title     `json:"min_title"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryEntry references a purchased catalog item.
type InventoryEntry struct {
	ItemID      string    `json:"item_id"`
	Price       int       `json:"price"`
	PurchasedAt time.Time `json:"purchased_at"`
}
