package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// NotificationConsumer reads queued notifications and hands them to the
// deliverer. Delivery failures are logged and the consumer moves on; the
// bounded retries live inside the deliverer.
type NotificationConsumer struct {
	reader  *kafkago.Reader
	handler *notification.Deliverer
	log     logger.Logger
}

func NewNotificationConsumer(cfg config.KafkaConfig, handler *notification.Deliverer, log logger.Logger) *NotificationConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.NotificationTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &NotificationConsumer{
		reader:  reader,
		handler: handler,
		log:     log,
	}
}

func (c *NotificationConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := c.handler.Handle(ctx, msg.Value); err != nil {
			c.log.Error("notification handling failed", logger.Error(err))
		}
	}
}

func (c *NotificationConsumer) Close() {
	_ = c.reader.Close()
}
