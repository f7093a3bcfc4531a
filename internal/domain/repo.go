package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateOrder     = errors.New("duplicate order")
	ErrNoPendingOrders    = errors.New("no pending orders")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

type ListingRepository interface {
	ActiveListings(ctx context.Context, f Filter) ([]Listing, error)
	GetListing(ctx context.Context, id string) (*Listing, error)
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, id string, st Status) error
	PendingOrders(ctx context.Context) ([]Order, error)
	OrdersByClient(ctx context.Context, clientID string) ([]Order, error)
	OrdersByProvider(ctx context.Context, providerID string) ([]Order, error)
}
