package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodcart/api-gateway/internal/gateway"
	"foodcart/config"
	"foodcart/logging"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load(":8080")
	log := logging.New("api-gateway", cfg.LogLevel)

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:   cfg.OrderSvcURL,
		ManagerSvcURL: cfg.ManagerSvcURL,
	}, &http.Client{Timeout: 90 * time.Second}, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: c.Handler(gw.SetupRoutes()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("API Gateway starting on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
