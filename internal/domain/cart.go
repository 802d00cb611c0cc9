package domain

// CartLine pairs a product with a purchase quantity.
// A line never exists with a quantity below 1; reducing a quantity
// to zero removes the line from the cart entirely.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart holds the selected lines for a single buyer. There is at most
// one line per product id; lines keep the order they were added in.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the unrounded sum of unit price times quantity over
// all lines. Rounding to two decimals happens only at presentation.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	return subtotal
}

// FindLine returns the index of the line holding the given product id,
// or -1 if the cart has no such line.
func (c *Cart) FindLine(productID string) int {
	for i, line := range c.Lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}
