package main

import (
	"context"
	"fmt"
	"log"

	"github.com/afeayo2/Econmmerce/internal/application/catalog"
	"github.com/afeayo2/Econmmerce/internal/application/checkout"
	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/application/orders"
	"github.com/afeayo2/Econmmerce/internal/application/payment"
	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/encoding/avro"
	ginserver "github.com/afeayo2/Econmmerce/internal/infrastructure/http/gin"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/http/paystack"
	kafkainfra "github.com/afeayo2/Econmmerce/internal/infrastructure/messaging/kafka"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/persistence/postgres"
	"github.com/afeayo2/Econmmerce/internal/interfaces/http/handler"
	"github.com/afeayo2/Econmmerce/internal/interfaces/http/middleware"
	"github.com/afeayo2/Econmmerce/internal/interfaces/http/router"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		logg.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	if err := orderRepo.EnsureSchema(ctx); err != nil {
		logg.Fatal("orders schema failed", logger.Error(err))
	}
	if err := productRepo.EnsureSchema(ctx); err != nil {
		logg.Fatal("products schema failed", logger.Error(err))
	}

	codec, err := avro.NewCodec(avro.EmailMessageSchema)
	if err != nil {
		logg.Fatal("avro codec failed", logger.Error(err))
	}

	producer, err := kafkainfra.NewNotificationProducer(cfg.Kafka, logg)
	if err != nil {
		logg.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close(ctx)

	dispatcher := notification.NewDispatcher(codec, producer, logg)
	gateway := paystack.NewClient(cfg.Paystack)

	checkoutSvc := checkout.NewService(productRepo, orderRepo, gateway,
		cfg.Bank, cfg.Paystack.CallbackBaseURL, logg)
	reconciler := payment.NewReconciler(orderRepo, gateway, dispatcher, cfg.Redirect, logg)
	statusSvc := orders.NewStatusService(orderRepo, productRepo, dispatcher, logg)
	catalogSvc := catalog.NewService(productRepo)

	metrics := middleware.NewServerMetrics("api")
	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, metrics,
		handler.NewCheckoutHandler(checkoutSvc, orderRepo),
		handler.NewPaymentHandler(reconciler),
		handler.NewAdminOrderHandler(statusSvc, orderRepo),
		handler.NewProductHandler(catalogSvc),
	)

	logg.Info("api listening", logger.String("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		logg.Fatal("server run failed", logger.Error(err))
	}
}
