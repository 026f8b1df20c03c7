package main

import (
	"net/http"

	"restopos/config"
	httpapi "restopos/terminal-svc/internal/api/http"
	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"
	"restopos/terminal-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)
	log := logger.WithField("service", "terminal-svc")

	db := config.MustInitPostgres()
	defer db.Close()

	journal := storage.NewPostgresJournal(db)
	if err := journal.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.KitchenTopic)
	defer writer.Close()

	backend := apiclient.NewClient(apiclient.Config{
		BaseURL: cfg.BackendURL,
		OnUnauthorized: func(token string) {
			log.Warn("Backend rejected session token, operator must log in again")
		},
	}, &http.Client{Timeout: cfg.BackendTimeout}, log)

	cache := storage.NewRedisCache(rdb)
	sessions := storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
	events := storage.NewKafkaPublisher(writer)

	catalog := service.NewCatalogService(backend, backend, backend, cache, cfg.CacheTTL, cfg.CategoryCacheTTL, log)
	auth := service.NewAuthService(backend, sessions, log)
	orders := service.NewOrderService(backend, backend, backend, catalog, events, cfg.ScreenIdle, log)
	checkout := service.NewCheckoutService(backend, journal, events, catalog, log)

	renderer := receipt.NewRenderer(
		receipt.DefaultQRGenerator{BaseURL: cfg.ReceiptBaseURL},
		receipt.RodRenderer{Bin: cfg.ChromeBin},
	)

	handler := httpapi.NewHandler(auth, catalog, orders, checkout, renderer, log)
	router := httpapi.NewRouter(handler, cfg.AllowedOrigins)

	httpapi.StartServer(":"+cfg.Port, router, log)
}
