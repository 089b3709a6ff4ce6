package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// NotificationProducer publishes encoded notification messages to the
// notification topic.
type NotificationProducer struct {
	client *kgo.Client
	topic  string
	log    logger.Logger
}

func NewNotificationProducer(cfg config.KafkaConfig, log logger.Logger) (*NotificationProducer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.NotificationTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer ready",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.NotificationTopic),
	)

	return &NotificationProducer{
		client: client,
		topic:  cfg.NotificationTopic,
		log:    log,
	}, nil
}

func (p *NotificationProducer) PublishNotification(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *NotificationProducer) Close(ctx context.Context) error {
	p.log.Info("closing kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
