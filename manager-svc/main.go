package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"foodcart/config"
	"foodcart/logging"
	httpapi "foodcart/manager-svc/internal/api/http"
	"foodcart/manager-svc/internal/geocoder"
	"foodcart/manager-svc/internal/service"
	"foodcart/manager-svc/internal/storage"
)

func main() {
	cfg := config.Load(":8082")
	log := logging.New("manager-svc", cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.GeocoderAPIKey == "" {
		log.Warn("GEOCODER_API_KEY is empty, geocoding requests will be rejected")
	}

	db := config.MustInitPostgres(cfg.PostgresDSN())
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	var cache service.CoordinateCache
	switch cfg.CoordinateCache {
	case "memory":
		cache = storage.NewMemoryCoordinateCache()
	case "redis":
		rdb := config.MustInitRedis(cfg.RedisAddr())
		defer rdb.Close()
		cache = storage.NewRedisCoordinateCache(rdb)
	default:
		log.Fatalf("unknown COORDINATE_CACHE %q", cfg.CoordinateCache)
	}
	log.WithField("backend", cfg.CoordinateCache).Info("coordinate cache ready")

	client := geocoder.NewClient(cfg.GeocoderURL, cfg.GeocoderAPIKey, cfg.GeocoderTimeout)
	resolver := service.NewCoordinateResolver(client, cache, log)

	auth := service.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL)
	created, err := auth.SeedAdmin(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if created {
		log.WithField("username", cfg.AdminUser).Info("admin user created")
	}

	manager := service.NewManagerService(repo, repo, repo, service.NewEngine(resolver), log)
	handler := httpapi.NewHandler(manager, auth)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrdersTopic, cfg.KafkaGroupID)
	warmer := service.NewCacheWarmer(reader, resolver, log.WithField("topic", cfg.OrdersTopic))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		warmer.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Infof("Manager service starting on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	wg.Wait()
	if err := reader.Close(); err != nil {
		log.Errorf("failed to close kafka reader: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
