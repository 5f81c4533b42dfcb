package scheduler

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/email"
	"storefront/platform/config"
	"storefront/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sender email.Sender
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := newWorker(sender, log)
	w.server = server
	return w, nil
}

func newWorker(sender email.Sender, log *logger.Logger) *Worker {
	w := &Worker{
		mux:    asynq.NewServeMux(),
		sender: sender,
		log:    log,
	}
	w.mux.HandleFunc(TaskCheckoutIntent, w.handleCheckoutIntent)
	return w
}

func (w *Worker) Run(ctx context.Context) error {
	if w == nil || w.server == nil {
		return nil
	}

	if err := w.server.Start(w.mux); err != nil {
		w.log.Error("scheduler worker failed to start", "error", err)
		return err
	}

	<-ctx.Done()
	w.server.Shutdown()
	w.log.Info("scheduler worker stopped")
	return nil
}

func (w *Worker) handleCheckoutIntent(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCheckoutIntentPayload(task)
	if err != nil {
		return fmt.Errorf("parse checkout intent: %v: %w", err, asynq.SkipRetry)
	}
	if payload.Email == "" || len(payload.Items) == 0 {
		w.log.Warn("checkout intent dropped", "sessionId", payload.SessionID, "reason", "missing email or items")
		return nil
	}

	items := make([]email.CheckoutItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, email.CheckoutItem{Title: item.Title, Quantity: item.Quantity})
	}

	if err := w.sender.SendCheckoutReceived(ctx, payload.Email, email.CheckoutReceived{
		SessionID:   payload.SessionID,
		Items:       items,
		RequestedAt: payload.RequestedAt.UTC().Format(time.RFC1123),
	}); err != nil {
		return fmt.Errorf("send checkout received email: %w", err)
	}

	w.log.Info("checkout received email sent", "sessionId", payload.SessionID, "items", len(items))
	return nil
}
