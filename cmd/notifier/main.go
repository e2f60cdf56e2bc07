package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hasthaat/storefront/internal/config"
	"github.com/hasthaat/storefront/internal/delivery/events"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting notifier service...")

	consumer, err := events.NewConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS consumer", err)
	}
	defer consumer.Close()

	if err := events.NewStreamConfig(consumer.JetStream(), appLogger).EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure event stream", err)
	}

	notifier := worker.NewNotifier(appLogger)

	if err := consumer.Subscribe(events.OrdersSubject, events.NotifierConsumer, notifier.HandleOrderEvent); err != nil {
		appLogger.Fatal("Failed to subscribe to order events", err)
	}

	if err := consumer.Subscribe(events.SellersSubject, "seller-notifier", events.LoggingHandler(appLogger)); err != nil {
		appLogger.Fatal("Failed to subscribe to seller events", err)
	}

	appLogger.Info("Notifier service started and listening for events...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down notifier service...")
}
