package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/config"
	"github.com/skillbridge/service-core/internal/domain"
	"github.com/skillbridge/service-core/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrBadJSON     = errors.New("bad json")
	ErrApply       = errors.New("listing change apply failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

type Service interface {
	OnListingChanged(ctx context.Context, l domain.Listing) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service Service, breaker brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     breaker,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle processes a single listing-changed event. The consumer commits
// the offset itself after Handle returns nil.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var listing domain.Listing
	if err := json.Unmarshal(message.Value, &listing); err != nil {
		h.logger.Error("bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadJSON
	}
	if listing.ID == "" {
		h.logger.Error("missing listing id",
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadJSON
	}

	if err := retry.Do(ctx, h.retryPolicy, func() error {
		return h.service.OnListingChanged(ctx, listing)
	}); err != nil {
		h.logger.Error("listing change not applied after retries",
			zap.String("listing_id", listing.ID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrApply
	}

	h.breaker.Success()
	h.logger.Info("listing change processed",
		zap.String("listing_id", listing.ID),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Int("value_bytes", len(message.Value)),
	)
	return nil
}
