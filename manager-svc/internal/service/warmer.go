package service

import (
	"context"
	"encoding/json"

	"foodcart/manager-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

// CacheWarmer resolves addresses announced on the events topic so the manager
// view finds them in the coordinate cache.
type CacheWarmer struct {
	Reader   MessageReader
	Resolver Resolver
	log      logrus.FieldLogger
}

func NewCacheWarmer(reader MessageReader, resolver Resolver, log logrus.FieldLogger) *CacheWarmer {
	return &CacheWarmer{Reader: reader, Resolver: resolver, log: log}
}

func (w *CacheWarmer) Start(ctx context.Context) {
	w.log.Info("starting coordinate cache warmer")
	for {
		message, err := w.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				w.log.Info("coordinate cache warmer stopped")
				return
			}
			w.log.Errorf("error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.log.WithField("offset", message.Offset).Errorf("error unmarshaling message: %v", err)
			continue
		}
		w.ProcessEvent(ctx, event)
	}
}

// ProcessEvent reports whether the event address ended up resolved.
func (w *CacheWarmer) ProcessEvent(ctx context.Context, event domain.Event) bool {
	if event.Type != domain.EventOrderCreated && event.Type != domain.EventRestaurantSaved {
		return false
	}
	if event.Address == "" {
		return false
	}

	log := w.log.WithFields(logrus.Fields{
		"type":    event.Type,
		"address": event.Address,
	})
	if _, err := w.Resolver.Resolve(ctx, event.Address); err != nil {
		log.Warnf("failed to warm coordinates: %v", err)
		return false
	}
	log.Debug("coordinates warmed")
	return true
}
