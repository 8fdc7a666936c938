// Package events publishes order lifecycle transitions to an external feed.
// Consumers (reporting, audit) replay the feed; the API never depends on it.
package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"gympoint-backend/internal/logger"
)

// OrderEvent records one lifecycle transition of a rental or inscription.
type OrderEvent struct {
	Kind       string    `json:"kind"` // "rental" or "inscription"
	OrderID    int32     `json:"order_id"`
	CustomerID int32     `json:"customer_id"`
	OldState   string    `json:"old_state"`
	NewState   string    `json:"new_state"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishOrderEvent(evt OrderEvent) error
	Close() error
}

type saramaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewSaramaPublisher connects a synchronous Kafka producer for the order feed.
func NewSaramaPublisher(brokers []string, topic string) (Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &saramaPublisher{producer: prod, topic: topic}, nil
}

func (p *saramaPublisher) PublishOrderEvent(evt OrderEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		logger.Error("Failed to publish order event", "topic", p.topic, "error", err)
		return err
	}
	logger.Debug("Order event published", "topic", p.topic, "partition", partition, "offset", offset)
	return nil
}

func (p *saramaPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, for
// deployments without a Kafka feed and for tests.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishOrderEvent(OrderEvent) error { return nil }
func (nopPublisher) Close() error                       { return nil }
