package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/skillbridge/service-core/internal/domain"
	"github.com/skillbridge/service-core/internal/observability"
)

//go:generate mockgen -source internal/application/service/order.go -destination=internal/application/service/order_mock_test.go -package=service

type Queue interface {
	Enqueue(o domain.Order) error
	EnqueueFront(o domain.Order) error
	DequeueFor(providerID string) (domain.Order, bool)
	Remove(orderID string) error
	Len() int
}

type OrderStorage interface {
	InsertOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, st domain.Status) error
	PendingOrders(ctx context.Context) ([]domain.Order, error)
	OrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error)
	OrdersByProvider(ctx context.Context, providerID string) ([]domain.Order, error)
}

// OrderService routes order placement and dispatch through the in-memory
// queue while the durable store stays authoritative. A failed enqueue after
// a successful durable write is only logged: Reconcile picks it up later.
type OrderService struct {
	queue   Queue
	storage OrderStorage
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewOrderService(queue Queue, storage OrderStorage, logger *zap.Logger, metrics observability.Metrics) *OrderService {
	return &OrderService{
		queue:   queue,
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *OrderService) Place(ctx context.Context, o *domain.Order) error {
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}

	if err := s.storage.InsertOrder(ctx, o); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			return err
		}
		s.logger.Error("order insert failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	enq := s.queue.Enqueue
	if o.Rush {
		enq = s.queue.EnqueueFront
	}
	if err := enq(*o); err != nil {
		// Durable write already succeeded; the queue is just a projection.
		s.logger.Warn("order persisted but not enqueued, reconcile will recover it",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}

	s.metrics.IncOrderPlaced()
	s.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("provider_id", o.ProviderID),
		zap.Bool("rush", o.Rush),
	)
	return nil
}

// ClaimNext hands the provider their oldest queued order and persists the
// accepted status. On a storage failure the order goes back to the front of
// the queue so no work is silently dropped.
func (s *OrderService) ClaimNext(ctx context.Context, providerID string) (*domain.Order, error) {
	o, ok := s.queue.DequeueFor(providerID)
	if !ok {
		return nil, domain.ErrNoPendingOrders
	}

	if err := s.storage.UpdateOrderStatus(ctx, o.ID, domain.StatusAccepted); err != nil {
		if reErr := s.queue.EnqueueFront(o); reErr != nil {
			s.logger.Error("failed to requeue order after storage error",
				zap.String("order_id", o.ID),
				zap.Error(reErr),
			)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	o.Status = domain.StatusAccepted
	s.metrics.IncOrderClaimed()
	s.logger.Info("order claimed",
		zap.String("order_id", o.ID),
		zap.String("provider_id", providerID),
	)
	return &o, nil
}

// Advance moves an order along its lifecycle after validating the
// transition against the durable record.
func (s *OrderService) Advance(ctx context.Context, orderID string, next domain.Status) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, next)
	}

	o, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if !o.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, o.Status, next)
	}

	if err := s.storage.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	o.Status = next

	// Past acceptance the order no longer belongs in the dispatch queue.
	if next != domain.StatusAccepted {
		if err := s.queue.Remove(orderID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("queue remove failed",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("order status advanced",
		zap.String("order_id", orderID),
		zap.String("status", string(next)),
	)
	return o, nil
}

func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	_, err := s.Advance(ctx, orderID, domain.StatusCancelled)
	return err
}

// OrdersByClient returns a client's order history, newest first.
func (s *OrderService) OrdersByClient(ctx context.Context, clientID string) ([]domain.Order, error) {
	out, err := s.storage.OrdersByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return out, nil
}

// OrdersByProvider returns the orders addressed to a provider, newest first.
func (s *OrderService) OrdersByProvider(ctx context.Context, providerID string) ([]domain.Order, error) {
	out, err := s.storage.OrdersByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return out, nil
}

// Reconcile rebuilds the queue from the durable store's pending orders.
// Orders already queued are skipped; anything lost to a missed enqueue or
// a restart is re-added in creation order.
func (s *OrderService) Reconcile(ctx context.Context) error {
	pending, err := s.storage.PendingOrders(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	var added int
	for _, o := range pending {
		enq := s.queue.Enqueue
		if o.Rush {
			// A recovered rush order keeps its priority.
			enq = s.queue.EnqueueFront
		}
		if err := enq(o); err != nil {
			if errors.Is(err, domain.ErrDuplicateOrder) {
				continue
			}
			return err
		}
		added++
	}

	if added > 0 {
		s.logger.Info("reconciled pending orders into queue",
			zap.Int("added", added),
			zap.Int("queue_len", s.queue.Len()),
		)
	}
	return nil
}
