package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodcart/config"
	"foodcart/logging"
	"foodcart/migrations"
	httpapi "foodcart/order-svc/internal/api/http"
	"foodcart/order-svc/internal/service"
	"foodcart/order-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8081")
	log := logging.New("order-svc", cfg.LogLevel)

	db := config.MustInitPostgres(cfg.PostgresDSN())
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrdersTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	publisher := storage.NewKafkaPublisher(writer)

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo, publisher, log),
		service.NewProductService(repo),
		service.NewMenuService(repo, repo, repo),
		service.NewOrderService(repo, repo, repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, log),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Order service starting on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
