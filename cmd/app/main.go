package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/application/handler"
	"github.com/skillbridge/service-core/internal/application/service"
	"github.com/skillbridge/service-core/internal/cache"
	"github.com/skillbridge/service-core/internal/config"
	"github.com/skillbridge/service-core/internal/database"
	"github.com/skillbridge/service-core/internal/domain"
	"github.com/skillbridge/service-core/internal/httpapi"
	"github.com/skillbridge/service-core/internal/kafka"
	"github.com/skillbridge/service-core/internal/observability"
	"github.com/skillbridge/service-core/internal/orderqueue"
	"github.com/skillbridge/service-core/internal/pkg/breaker"
	"github.com/skillbridge/service-core/internal/pkg/retry"
	"github.com/skillbridge/service-core/internal/ranking"
	"github.com/skillbridge/service-core/internal/search"
	"github.com/skillbridge/service-core/internal/tagindex"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := database.Connect(ctx, cfg.DSN())
	defer pool.Close()
	repo := database.New(pool, cfg.Tables)

	metrics := observability.NewInmem(1000)

	listingCache := cache.New[[]domain.Listing](cfg.Cache.Cap)
	ranker := ranking.New(ranking.Weights{
		RatingWeight: cfg.Ranking.RatingWeight,
		DecayPerDay:  cfg.Ranking.DecayPerDay,
	})
	tags := tagindex.New()
	queue := orderqueue.New()

	suggester, err := search.New(repo, cfg.SuggestCacheSize, logger)
	if err != nil {
		logger.Fatal("suggester init", zap.Error(err))
	}

	listingSvc := service.NewListingService(
		listingCache, ranker, tags, repo, repo, suggester,
		service.ListingConfig{
			BrowseTTL:   cfg.Cache.BrowseTTL,
			FeaturedTTL: cfg.Cache.FeaturedTTL,
		},
		logger, metrics,
	)
	orderSvc := service.NewOrderService(queue, repo, logger, metrics)

	// Warm the dispatch queue from the durable store before serving.
	if err := orderSvc.Reconcile(ctx); err != nil {
		logger.Warn("initial reconcile failed", zap.Error(err))
	}

	if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, 3, 1, logger); err != nil {
		logger.Warn("ensure topic failed", zap.Error(err))
	}

	brk := breaker.New(cfg.Breaker)
	msgHandler := handler.NewHandler(listingSvc, brk, cfg.Retry, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		GroupID:  cfg.Kafka.Group,
		Topic:    cfg.Kafka.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer func() { _ = reader.Close() }()

	consumer := kafka.NewConsumer(msgHandler, reader, cfg.Kafka.Workers, metrics, logger)
	go consumer.Start(ctx)

	go reconcileLoop(ctx, orderSvc, cfg, logger)

	server := httpapi.New(listingSvc, orderSvc, suggester, logger, metrics)
	logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
	logger.Info("server stopped")
}

// reconcileLoop periodically rebuilds the order queue so that orders lost
// to a missed enqueue or a crash get back into dispatch.
func reconcileLoop(ctx context.Context, orders *service.OrderService, cfg config.Config, logger *zap.Logger) {
	interval := cfg.ReconcileInterval
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := retry.Do(ctx, cfg.Retry, func() error {
				return orders.Reconcile(ctx)
			}); err != nil {
				logger.Warn("reconcile failed", zap.Error(err))
			}
		}
	}
}
