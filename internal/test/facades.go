package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// StoreFacadeStub provides controllable behaviour for store endpoints.
type StoreFacadeStub struct {
	StoresFn   func(context.Context) ([]model.Store, error)
	StoreFn    func(context.Context, int) (*model.Store, error)
	RegisterFn func(context.Context, *model.Store) (*model.Store, error)
	ReviseFn   func(context.Context, *model.Store) (*model.Store, error)
	DeleteFn   func(context.Context, int) (bool, error)
}

// Stores returns configured stores or a single default one.
func (s StoreFacadeStub) Stores(ctx context.Context) ([]model.Store, error) {
	if s.StoresFn != nil {
		return s.StoresFn(ctx)
	}
	return []model.Store{storedStore(1)}, nil
}

// Store returns the configured store or a default one for any id.
func (s StoreFacadeStub) Store(ctx context.Context, id int) (*model.Store, error) {
	if s.StoreFn != nil {
		return s.StoreFn(ctx, id)
	}
	st := storedStore(id)
	return &st, nil
}

// RegisterStore echoes the store back with id 1.
func (s StoreFacadeStub) RegisterStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, store)
	}
	out := store.Clone()
	out.ID = 1
	out.CreatedAt = time.Unix(0, 0)
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

// ReviseStore echoes the store back.
func (s StoreFacadeStub) ReviseStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if s.ReviseFn != nil {
		return s.ReviseFn(ctx, store)
	}
	out := store.Clone()
	return &out, nil
}

// DeleteStore reports success unless overridden.
func (s StoreFacadeStub) DeleteStore(ctx context.Context, id int) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return true, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn  func(context.Context, *model.Order) (*model.Order, error)
	OrderFn   func(context.Context, string) (*model.Order, error)
	RecentFn  func(context.Context, int) ([]model.Order, error)
	PendingFn func(context.Context) ([]model.Order, error)
}

// SubmitOrder stamps the order as the use case would.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, order)
	}
	order.OrderID = "ORD20250301120000000"
	order.Status = model.OrderStatusPending
	order.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	return order, nil
}

// Order returns the configured order or a default one.
func (s OrderFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	o := NewOrder("好吃便當店")
	o.OrderID = orderID
	o.Status = model.OrderStatusPending
	return o, nil
}

// RecentOrders returns configured history or a single order.
func (s OrderFacadeStub) RecentOrders(ctx context.Context, days int) ([]model.Order, error) {
	if s.RecentFn != nil {
		return s.RecentFn(ctx, days)
	}
	o := NewOrder("好吃便當店")
	o.OrderID = "ORD20250301120000000"
	o.Status = model.OrderStatusPending
	return []model.Order{*o}, nil
}

// PendingOrders returns configured pending orders or none.
func (s OrderFacadeStub) PendingOrders(ctx context.Context) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx)
	}
	return nil, nil
}

// LunchFacadeStub combines the store and order stubs.
type LunchFacadeStub struct {
	StoreFacadeStub
	OrderFacadeStub
}

// OrderCleanerStub records cleanup requests.
type OrderCleanerStub struct {
	Removed int
	Err     error

	mu   sync.Mutex
	days []int
}

// CleanupOldOrders records days and returns the configured result.
func (s *OrderCleanerStub) CleanupOldOrders(_ context.Context, days int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, days)
	return s.Removed, s.Err
}

// Calls returns the day counts passed so far.
func (s *OrderCleanerStub) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.days...)
}

func storedStore(id int) model.Store {
	st := NewStore("好吃便當店", "0912345678", DefaultAddress)
	st.ID = id
	st.CreatedAt = time.Unix(0, 0)
	st.UpdatedAt = st.CreatedAt
	return *st
}
