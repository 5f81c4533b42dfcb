package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskCheckoutIntent = "checkout.intent"

type CheckoutIntentItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
}

type CheckoutIntentPayload struct {
	EventID     string               `json:"eventId"`
	SessionID   string               `json:"sessionId"`
	Email       string               `json:"email"`
	Items       []CheckoutIntentItem `json:"items"`
	RequestedAt time.Time            `json:"requestedAt"`
}

func NewCheckoutIntentTask(payload CheckoutIntentPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutIntent, data), nil
}

func ParseCheckoutIntentPayload(task *asynq.Task) (CheckoutIntentPayload, error) {
	var payload CheckoutIntentPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CheckoutIntentPayload{}, err
	}
	return payload, nil
}
