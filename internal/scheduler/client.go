package scheduler

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"storefront/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	checkoutIntentMaxRetry = 5
	checkoutIntentTimeout  = 30 * time.Second
)

type Client struct {
	client *asynq.Client
	queue  string
}

// CheckoutEnqueuer hands checkout intents to the background queue.
type CheckoutEnqueuer interface {
	EnqueueCheckoutIntent(ctx context.Context, payload CheckoutIntentPayload) error
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queueName(cfg),
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) EnqueueCheckoutIntent(ctx context.Context, payload CheckoutIntentPayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewCheckoutIntentTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, checkoutIntentOptions(c.queue, payload)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// checkoutIntentOptions keys the task by event ID so a republished event is
// queued once.
func checkoutIntentOptions(queue string, payload CheckoutIntentPayload) []asynq.Option {
	opts := []asynq.Option{
		asynq.Queue(queue),
		asynq.MaxRetry(checkoutIntentMaxRetry),
		asynq.Timeout(checkoutIntentTimeout),
	}
	if payload.EventID != "" {
		opts = append(opts, asynq.TaskID(payload.EventID))
	}
	return opts
}

var _ CheckoutEnqueuer = (*Client)(nil)

func queueName(cfg config.SchedulerConfig) string {
	if queue := cfg.GetAsynqQueueName(); queue != "" {
		return queue
	}
	return "default"
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfigFor(opt, tlsInsecure),
	}, nil
}

func tlsConfigFor(opt *redis.Options, tlsInsecure bool) *tls.Config {
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		return clone
	}
	if tlsInsecure {
		return &tls.Config{InsecureSkipVerify: true}
	}
	return nil
}
