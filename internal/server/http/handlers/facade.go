package handlers

import (
	"context"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// StoreFacade describes store catalogue operations required by handlers.
type StoreFacade interface {
	Stores(ctx context.Context) ([]model.Store, error)
	Store(ctx context.Context, id int) (*model.Store, error)
	RegisterStore(ctx context.Context, store *model.Store) (*model.Store, error)
	ReviseStore(ctx context.Context, store *model.Store) (*model.Store, error)
	DeleteStore(ctx context.Context, id int) (bool, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	RecentOrders(ctx context.Context, days int) ([]model.Order, error)
	PendingOrders(ctx context.Context) ([]model.Order, error)
}

// LunchFacade aggregates the full set of operations used across handlers.
type LunchFacade interface {
	StoreFacade
	OrderFacade
}
