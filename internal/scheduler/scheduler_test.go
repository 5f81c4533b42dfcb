package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/email"
	"storefront/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
)

type testSchedulerConfig struct {
	redisURL string
	queue    string
}

func (c testSchedulerConfig) GetRedisURL() string       { return c.redisURL }
func (c testSchedulerConfig) GetRedisTLSInsecure() bool { return false }
func (c testSchedulerConfig) GetAsynqQueueName() string { return c.queue }
func (c testSchedulerConfig) GetAsynqConcurrency() int  { return 1 }

type recordingSender struct {
	to   []string
	data []email.CheckoutReceived
	err  error
}

func (s *recordingSender) SendCheckoutReceived(_ context.Context, toEmail string, data email.CheckoutReceived) error {
	if s.err != nil {
		return s.err
	}
	s.to = append(s.to, toEmail)
	s.data = append(s.data, data)
	return nil
}

func TestCheckoutIntentTaskRoundTrip(t *testing.T) {
	requestedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	task, err := NewCheckoutIntentTask(CheckoutIntentPayload{
		SessionID:   "s-1",
		Email:       "vedovelli@gmail.com",
		Items:       []CheckoutIntentItem{{ProductID: "p1", Title: "Beautiful Watch", Quantity: 2}},
		RequestedAt: requestedAt,
	})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.Type() != "checkout.intent" {
		t.Fatalf("unexpected task type %q", task.Type())
	}

	payload, err := ParseCheckoutIntentPayload(task)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if payload.Email != "vedovelli@gmail.com" || len(payload.Items) != 1 || !payload.RequestedAt.Equal(requestedAt) {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestWorkerSendsCheckoutReceivedEmail(t *testing.T) {
	sender := &recordingSender{}
	w := newWorker(sender, logger.Discard())

	task, _ := NewCheckoutIntentTask(CheckoutIntentPayload{
		SessionID: "s-1",
		Email:     "vedovelli@gmail.com",
		Items:     []CheckoutIntentItem{{ProductID: "p1", Title: "Beautiful Watch", Quantity: 2}},
	})
	if err := w.handleCheckoutIntent(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(sender.to) != 1 || sender.to[0] != "vedovelli@gmail.com" {
		t.Fatalf("expected one email to the shopper, got %v", sender.to)
	}
	if items := sender.data[0].Items; len(items) != 1 || items[0].Title != "Beautiful Watch" || items[0].Quantity != 2 {
		t.Fatalf("unexpected email items %+v", items)
	}
}

func TestWorkerDropsIncompleteIntent(t *testing.T) {
	sender := &recordingSender{}
	w := newWorker(sender, logger.Discard())

	task, _ := NewCheckoutIntentTask(CheckoutIntentPayload{SessionID: "s-1", Email: "vedovelli@gmail.com"})
	if err := w.handleCheckoutIntent(context.Background(), task); err != nil {
		t.Fatalf("expected incomplete intent to be dropped, got %v", err)
	}
	if len(sender.to) != 0 {
		t.Fatal("expected no email for an intent without items")
	}
}

func TestWorkerSkipsRetryOnMalformedPayload(t *testing.T) {
	w := newWorker(&recordingSender{}, logger.Discard())

	err := w.handleCheckoutIntent(context.Background(), asynq.NewTask(TaskCheckoutIntent, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestWorkerRetriesOnSendFailure(t *testing.T) {
	w := newWorker(&recordingSender{err: errors.New("smtp down")}, logger.Discard())

	task, _ := NewCheckoutIntentTask(CheckoutIntentPayload{
		Email: "vedovelli@gmail.com",
		Items: []CheckoutIntentItem{{ProductID: "p1", Title: "Beautiful Watch", Quantity: 1}},
	})
	err := w.handleCheckoutIntent(context.Background(), task)
	if err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected retryable error, got %v", err)
	}
}

func TestRedisHealthPing(t *testing.T) {
	mr := miniredis.RunT(t)

	health, err := NewRedisHealth(testSchedulerConfig{redisURL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("new health: %v", err)
	}
	defer health.Close()

	if err := health.Ping(context.Background()); err != nil {
		t.Fatalf("expected ping to succeed, got %v", err)
	}

	mr.Close()
	if err := health.Ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail once redis is gone")
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(testSchedulerConfig{}); err == nil {
		t.Fatal("expected error without redis url")
	}

	mr := miniredis.RunT(t)
	client, err := NewClient(testSchedulerConfig{redisURL: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()
	if client.queue != "default" {
		t.Fatalf("expected default queue, got %q", client.queue)
	}
}

func TestRedisClientOptParsesURL(t *testing.T) {
	opt, err := redisClientOpt("redis://:secret@localhost:6380/2", false)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.Addr != "localhost:6380" || opt.Password != "secret" || opt.DB != 2 || opt.TLSConfig != nil {
		t.Fatalf("unexpected opt %+v", opt)
	}

	opt, err = redisClientOpt("rediss://localhost:6380", true)
	if err != nil {
		t.Fatalf("parse tls: %v", err)
	}
	if opt.TLSConfig == nil || !opt.TLSConfig.InsecureSkipVerify {
		t.Fatal("expected insecure tls config")
	}
}

func TestCheckoutIntentOptionsKeyTaskByEvent(t *testing.T) {
	hasTaskID := func(opts []asynq.Option) (string, bool) {
		for _, o := range opts {
			if o.Type() == asynq.TaskIDOpt {
				id, _ := o.Value().(string)
				return id, true
			}
		}
		return "", false
	}

	if id, ok := hasTaskID(checkoutIntentOptions("default", CheckoutIntentPayload{EventID: "evt-1"})); !ok || id != "evt-1" {
		t.Fatalf("expected task id evt-1, got %q (set=%v)", id, ok)
	}
	if _, ok := hasTaskID(checkoutIntentOptions("default", CheckoutIntentPayload{})); ok {
		t.Fatal("expected no task id without an event id")
	}
}
