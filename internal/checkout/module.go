package checkout

import (
	"storefront/internal/events"
	"storefront/internal/scheduler"
	"storefront/platform/logger"
)

// Module wires the checkout service and subscribes the queue dispatcher.
type Module struct {
	service *Service
}

// NewModule creates the checkout module. queue may be nil, in which case
// intents are logged instead of queued.
func NewModule(bus events.Bus, queue scheduler.CheckoutEnqueuer, log *logger.Logger) *Module {
	bus.Subscribe(events.CheckoutRequested{}.EventName(), NewDispatcher(queue, log))
	return &Module{service: NewService(bus)}
}

func (m *Module) Name() string {
	return "checkout"
}

func (m *Module) Service() *Service {
	return m.service
}
