package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/encoding/avro"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/mail"
	kafkainfra "github.com/afeayo2/Econmmerce/internal/infrastructure/messaging/kafka"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// The worker drains the notification topic and delivers emails over SMTP,
// keeping mail outages away from the request path of the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	codec, err := avro.NewCodec(avro.EmailMessageSchema)
	if err != nil {
		logg.Fatal("avro codec failed", logger.Error(err))
	}

	sink := mail.NewSMTPSink(cfg.SMTP)
	deliverer := notification.NewDeliverer(codec, sink, logg)

	consumer := kafkainfra.NewNotificationConsumer(cfg.Kafka, deliverer, logg)
	defer consumer.Close()

	logg.Info("notification worker started",
		logger.String("topic", cfg.Kafka.NotificationTopic),
		logger.String("group", cfg.Kafka.ConsumerGroup),
	)

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		logg.Fatal("consumer stopped", logger.Error(err))
	}
	logg.Info("notification worker stopped")
}
