package cart

// LineItem pairs a product with its quantity in the cart.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// State is a point-in-time copy of the cart. Items keep the order in which
// products were first added.
type State struct {
	Open  bool       `json:"open"`
	Items []LineItem `json:"items"`
}

// IsEmpty reports whether the state has no line items.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// TotalQuantity sums the quantities of all line items.
func (s State) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

func (s State) clone() State {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return State{Open: s.Open, Items: items}
}
