package wishlist

import "time"

type Item struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductImage *string   `json:"productImage,omitempty"`
	Price        float64   `json:"price"`
	InStock      bool      `json:"inStock"`
	AddedAt      time.Time `json:"addedAt"`
}

// Wishlist holds at most one item per product id.
type Wishlist struct {
	Items []Item `json:"items"`
}

// Dedupe drops later items whose product id already appeared.
func (w *Wishlist) Dedupe() {
	seen := make(map[string]struct{}, len(w.Items))
	kept := make([]Item, 0, len(w.Items))
	for _, it := range w.Items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		kept = append(kept, it)
	}
	w.Items = kept
}

func (w *Wishlist) Contains(productID string) bool {
	if w == nil {
		return false
	}
	for _, it := range w.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// ItemForProduct returns the wishlist item id holding productID.
func (w *Wishlist) ItemForProduct(productID string) (string, bool) {
	if w == nil {
		return "", false
	}
	for _, it := range w.Items {
		if it.ProductID == productID {
			return it.ID, true
		}
	}
	return "", false
}

func (w *Wishlist) Clone() *Wishlist {
	if w == nil {
		return nil
	}
	return &Wishlist{Items: append([]Item(nil), w.Items...)}
}

type AddRequest struct {
	ProductID string  `json:"productId"`
	Notes     *string `json:"notes,omitempty"`
}
