package cart

// TaxRate is applied to the subtotal on both client and server.
const TaxRate = 0.1

type CartItem struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	ProductImage  *string `json:"productImage,omitempty"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	StockQuantity int     `json:"stockQuantity"`
}

// Cart totals always satisfy subtotal = sum(price*quantity),
// tax = subtotal*TaxRate, total = subtotal+tax and itemCount = len(items).
type Cart struct {
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// EmptyCart is the canonical shape of a cleared cart.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Recalculate recomputes every derived field from the items.
func (c *Cart) Recalculate() {
	var subtotal float64
	for i := range c.Items {
		c.Items[i].Total = c.Items[i].Price * float64(c.Items[i].Quantity)
		subtotal += c.Items[i].Total
	}
	c.Subtotal = subtotal
	c.Tax = subtotal * TaxRate
	c.Total = c.Subtotal + c.Tax
	c.ItemCount = len(c.Items)
}

// Remove drops the line with the given id and recomputes totals. It reports
// whether a line was removed.
func (c *Cart) Remove(itemID string) bool {
	kept := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(c.Items)
	c.Items = kept
	c.Recalculate()
	return removed
}

// Find returns the line holding productID.
func (c *Cart) Find(productID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	out := *c
	out.Items = append([]CartItem(nil), c.Items...)
	return &out
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
