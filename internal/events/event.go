// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"storefront/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Checkout Domain Events
// =============================================================================

// CheckoutItem is one line of the cart at the moment checkout was requested.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequested is published when a visitor submits the cart panel with
// a non-empty email and at least one item.
type CheckoutRequested struct {
	BaseEvent
	SessionID string         `json:"sessionId"`
	Email     string         `json:"email"`
	Items     []CheckoutItem `json:"items"`
}

func (e CheckoutRequested) EventName() string { return "checkout.requested" }
