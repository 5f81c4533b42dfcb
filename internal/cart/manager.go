// Package cart owns the shopping cart state for one storefront session.
//
// A Manager is the only writer of its State. Product cards, cart rows and the
// cart panel all receive the same *Manager and go through its methods; reads
// return copies so no caller can change the cart behind the manager's back.
package cart

import "sync"

// Manager holds the open flag and line items of a single cart.
//
// Every method runs to completion under the manager's mutex, so mutations
// never interleave and a State call made after a mutation returns observes it.
type Manager struct {
	mu    sync.Mutex
	state State
}

// New returns a closed, empty cart.
func New() *Manager {
	return &Manager{state: State{Items: []LineItem{}}}
}

// State returns a snapshot of the cart.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// HasItems reports whether at least one line item exists.
func (m *Manager) HasItems() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.Items) > 0
}

// Item returns the line item for productID.
func (m *Manager) Item(productID string) (LineItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.indexOf(productID)
	if idx < 0 {
		return LineItem{}, false
	}
	return m.state.Items[idx], true
}

// Open shows the cart panel.
func (m *Manager) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Open = true
}

// Close hides the cart panel. Items are left alone.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Open = false
}

// AddProduct appends p with quantity 1. Adding a product that is already in
// the cart changes nothing; quantities only move through IncreaseQuantity and
// DecreaseQuantity.
func (m *Manager) AddProduct(p Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(p.ID) >= 0 {
		return
	}
	m.state.Items = append(m.state.Items, LineItem{Product: p, Quantity: 1})
}

// RemoveProduct drops the line item for productID, if any.
func (m *Manager) RemoveProduct(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.indexOf(productID)
	if idx < 0 {
		return
	}
	m.state.Items = append(m.state.Items[:idx], m.state.Items[idx+1:]...)
}

// IncreaseQuantity adds one to the quantity of productID.
func (m *Manager) IncreaseQuantity(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.indexOf(productID); idx >= 0 {
		m.state.Items[idx].Quantity++
	}
}

// DecreaseQuantity subtracts one from the quantity of productID, stopping at
// zero. A zero-quantity item stays in the cart until removed.
func (m *Manager) DecreaseQuantity(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.indexOf(productID); idx >= 0 && m.state.Items[idx].Quantity > 0 {
		m.state.Items[idx].Quantity--
	}
}

// ClearProducts empties the cart and closes it.
func (m *Manager) ClearProducts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Items = []LineItem{}
	m.state.Open = false
}

// ClearCart is an alias of ClearProducts.
func (m *Manager) ClearCart() {
	m.ClearProducts()
}

// indexOf must be called with mu held.
func (m *Manager) indexOf(productID string) int {
	for i, item := range m.state.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}
