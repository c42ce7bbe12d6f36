package entities

import "time"

// CartItem is a mutable cart line; quantities merge when the same product is added again.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart holds a user's items until they are converted into a Pedido.
//
// Only one active cart may exist per user; the storage layer enforces it.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FindItem returns the index of the item with the given id, or -1.
func (c Cart) FindItem(itemID string) int {
	for i, it := range c.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// AddItem merges quantity into the line for productID or appends a new line built by newID.
// It returns the resulting line.
func (c *Cart) AddItem(productID string, quantity int, newID func() string) CartItem {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Quantity += quantity
			return c.Items[i]
		}
	}
	item := CartItem{ID: newID(), ProductID: productID, Quantity: quantity}
	c.Items = append(c.Items, item)
	return item
}

// LineSpecs converts the cart content into order line requests.
func (c Cart) LineSpecs() []LineSpec {
	specs := make([]LineSpec, 0, len(c.Items))
	for _, it := range c.Items {
		specs = append(specs, LineSpec{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return specs
}
