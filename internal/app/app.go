package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	emailadapter "github.com/fatemaDiba/BiteShare-backend/internal/adapter/email"
	mongoadapter "github.com/fatemaDiba/BiteShare-backend/internal/adapter/mongo"
	natsadapter "github.com/fatemaDiba/BiteShare-backend/internal/adapter/nats"
	redisadapter "github.com/fatemaDiba/BiteShare-backend/internal/adapter/redis"
	"github.com/fatemaDiba/BiteShare-backend/internal/app/config"
	"github.com/fatemaDiba/BiteShare-backend/internal/notifier"
	"github.com/fatemaDiba/BiteShare-backend/internal/platform/logger"
	"github.com/fatemaDiba/BiteShare-backend/internal/service"
	natsgo "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App wires the marketplace: mongo stores, redis featured cache, NATS event
// publisher, SMTP dispatcher, and the services the routing layer binds.
type App struct {
	cfg *config.Config
	log logger.Logger

	Fulfillment service.FulfillmentService
	Listings    service.ListingService
	Reports     service.OrderReportService

	mongoClient *mongo.Client
	redisClient *redis.Client
	natsConn    *natsgo.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s", cfg.Env)

	mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	appLogger.Info("MongoDB client initialized")

	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	appLogger.Info("Redis client initialized")

	natsConn, err := natsadapter.NewConnection(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	msgPublisher, err := natsadapter.NewPublisher(natsConn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize NATS publisher: %w", err)
	}
	appLogger.Info("NATS publisher initialized")

	emailSender, err := emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
	}
	dispatcher := notifier.NewEmailDispatcher(emailSender, appLogger)

	listingRepo := mongoadapter.NewListingRepository(mongoClient, cfg.MongoDB)
	requestRepo := mongoadapter.NewRequestRepository(mongoClient, cfg.MongoDB)
	orderRepo := mongoadapter.NewOrderRepository(mongoClient, cfg.MongoDB)
	featuredCache := redisadapter.NewFeaturedListingCache(redisClient)
	appLogger.Info("Repositories initialized")

	return &App{
		cfg: cfg,
		log: appLogger,
		Fulfillment: service.NewFulfillmentService(
			listingRepo, requestRepo, orderRepo, dispatcher, msgPublisher, appLogger,
		),
		Listings: service.NewListingService(
			listingRepo, requestRepo, featuredCache,
			cfg.Featured.Limit, cfg.Featured.TTL, appLogger,
		),
		Reports:     service.NewOrderReportService(orderRepo, appLogger),
		mongoClient: mongoClient,
		redisClient: redisClient,
		natsConn:    natsConn,
	}, nil
}

// Run blocks until SIGINT/SIGTERM, then closes the clients.
func (a *App) Run() {
	a.log.Info("Marketplace service is up")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown.Timeout)
	defer cancel()

	a.natsConn.Close()
	a.log.Info("NATS connection closed")

	if err := a.redisClient.Close(); err != nil {
		a.log.Errorf("Error closing Redis client: %v", err)
	} else {
		a.log.Info("Redis client closed")
	}

	if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
		a.log.Errorf("Error disconnecting from MongoDB: %v", err)
	} else {
		a.log.Info("MongoDB connection closed")
	}

	a.log.Info("Marketplace service shut down")
}
