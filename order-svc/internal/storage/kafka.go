package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"foodcart/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys order events by order id and restaurant events by
// restaurant id so updates of one entity stay on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := "order:" + strconv.Itoa(event.OrderID)
	if event.Type == domain.EventRestaurantSaved {
		key = "restaurant:" + strconv.Itoa(event.RestaurantID)
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
