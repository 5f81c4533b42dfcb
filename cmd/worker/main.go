package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/email"
	"storefront/internal/scheduler"
	"storefront/platform/config"
	"storefront/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender := email.New(cfg)
	if !cfg.GetEmailEnabled() {
		log.Warn("SMTP not configured; checkout confirmations will not be sent")
	}

	worker, err := scheduler.NewWorker(cfg, sender, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	redisHealth, err := scheduler.NewRedisHealth(cfg)
	if err != nil {
		log.Error("failed to initialize redis health check", "error", err)
		panic("failed to initialize redis health check: " + err.Error())
	}
	defer func() { _ = redisHealth.Close() }()
	if err := redisHealth.Ping(ctx); err != nil {
		log.Warn("redis not reachable yet; worker will keep retrying", "error", err)
	}

	if err := worker.Run(ctx); err != nil {
		log.Error("worker error", "error", err)
		panic("worker error: " + err.Error())
	}
}
