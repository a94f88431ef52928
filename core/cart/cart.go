package cart

import (
	"math"

	"github.com/dmitrymomot/storefront/core/client"
)

// StorageKey names the durable record holding the cart state.
const StorageKey = "cart-storage"

// Item is one product's line entry. Product and Price are snapshots captured
// when the entry was created.
type Item struct {
	ProductID int64          `json:"product_id"`
	Product   client.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	Price     float64        `json:"price"`
}

// Subtotal is the line total for this entry.
func (i Item) Subtotal() float64 {
	return roundCents(i.Price * float64(i.Quantity))
}

// Totals are the order totals derived from the current line entries.
// Derived on demand, never stored.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
