package app

import (
	"context"

	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/usecase"
)

// LunchFacade exposes the store and order use cases to the transport layer.
type LunchFacade struct {
	stores *usecase.StoreUseCase
	orders *usecase.OrderUseCase
}

func NewLunchFacade(stores *usecase.StoreUseCase, orders *usecase.OrderUseCase) *LunchFacade {
	return &LunchFacade{stores: stores, orders: orders}
}

func (f *LunchFacade) Stores(ctx context.Context) ([]model.Store, error) {
	return f.stores.GetAllStores(ctx)
}

func (f *LunchFacade) Store(ctx context.Context, id int) (*model.Store, error) {
	return f.stores.GetStoreByID(ctx, id)
}

// RegisterStore adds the store, refusing duplicates of an existing one.
func (f *LunchFacade) RegisterStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	return f.stores.RegisterStore(ctx, store)
}

// ReviseStore updates the store, refusing edits that would duplicate another one.
func (f *LunchFacade) ReviseStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	return f.stores.ReviseStore(ctx, store)
}

func (f *LunchFacade) DeleteStore(ctx context.Context, id int) (bool, error) {
	return f.stores.DeleteStore(ctx, id)
}

func (f *LunchFacade) SubmitOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	return f.orders.CreateOrder(ctx, order)
}

func (f *LunchFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.GetOrderByID(ctx, orderID)
}

func (f *LunchFacade) RecentOrders(ctx context.Context, days int) ([]model.Order, error) {
	return f.orders.GetRecentOrders(ctx, days)
}

func (f *LunchFacade) PendingOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.GetPendingOrders(ctx)
}

// CleanupOldOrders trims the order history.
func (f *LunchFacade) CleanupOldOrders(ctx context.Context, days int) (int, error) {
	return f.orders.CleanupOldOrders(ctx, days)
}
