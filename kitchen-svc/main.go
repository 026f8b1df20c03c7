package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restopos/config"
	httpapi "restopos/kitchen-svc/internal/api/http"
	"restopos/kitchen-svc/internal/service"
	"restopos/kitchen-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "kitchen-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KitchenTopic, "kitchen-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(rdb)
	router := httpapi.NewRouter(httpapi.NewHandler(store, log), cfg.AllowedOrigins)
	go httpapi.StartServer(":"+cfg.KitchenPort, router, log)

	consumer := service.NewConsumer(reader, store, log)
	consumer.Start(ctx)
}
