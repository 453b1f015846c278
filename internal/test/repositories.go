package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// StoreRepositoryStub keeps stores in memory and lets tests override behaviour.
type StoreRepositoryStub struct {
	GetAllFn   func(context.Context) ([]model.Store, error)
	GetByIDFn  func(context.Context, int) (*model.Store, error)
	AddFn      func(context.Context, *model.Store) (*model.Store, error)
	UpdateFn   func(context.Context, *model.Store) (*model.Store, error)
	DeleteFn   func(context.Context, int) (bool, error)
	Err        error
	Stores     []model.Store
	AddCalls   int
	checkCalls int

	mu sync.Mutex
}

// GetAll returns configured stores.
func (s *StoreRepositoryStub) GetAll(ctx context.Context) ([]model.Store, error) {
	if s.GetAllFn != nil {
		return s.GetAllFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Store, len(s.Stores))
	copy(out, s.Stores)
	return out, nil
}

// GetByID returns matched store or nil.
func (s *StoreRepositoryStub) GetByID(ctx context.Context, id int) (*model.Store, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, st := range s.Stores {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, nil
}

// Add appends store with the next sequential id.
func (s *StoreRepositoryStub) Add(ctx context.Context, store *model.Store) (*model.Store, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, store)
	}
	return s.AddIf(ctx, store, nil)
}

// AddIf appends store unless check rejects the current content.
func (s *StoreRepositoryStub) AddIf(ctx context.Context, store *model.Store, check func([]model.Store) error) (*model.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AddCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	if check != nil {
		s.checkCalls++
		if err := check(s.Stores); err != nil {
			return nil, err
		}
	}
	added := *store
	added.ID = len(s.Stores) + 1
	now := time.Now()
	added.CreatedAt, added.UpdatedAt = now, now
	s.Stores = append(s.Stores, added)
	return &added, nil
}

// Update replaces store with the same id.
func (s *StoreRepositoryStub) Update(ctx context.Context, store *model.Store) (*model.Store, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, store)
	}
	return s.UpdateIf(ctx, store, nil)
}

// UpdateIf replaces store unless check rejects the current content.
func (s *StoreRepositoryStub) UpdateIf(ctx context.Context, store *model.Store, check func([]model.Store) error) (*model.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Stores {
		if s.Stores[i].ID != store.ID {
			continue
		}
		if check != nil {
			s.checkCalls++
			if err := check(s.Stores); err != nil {
				return nil, err
			}
		}
		updated := *store
		updated.CreatedAt = s.Stores[i].CreatedAt
		updated.UpdatedAt = time.Now()
		s.Stores[i] = updated
		return &updated, nil
	}
	return nil, nil
}

// Delete removes store with id.
func (s *StoreRepositoryStub) Delete(ctx context.Context, id int) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	for i := range s.Stores {
		if s.Stores[i].ID == id {
			s.Stores = append(s.Stores[:i], s.Stores[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// CheckCalls reports how many conditional writes consulted their check.
func (s *StoreRepositoryStub) CheckCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkCalls
}

// OrderRepositoryStub keeps orders in memory and lets tests override behaviour.
type OrderRepositoryStub struct {
	AppendFn   func(context.Context, *model.Order) error
	FindByIDFn func(context.Context, string) (*model.Order, error)
	ListFn     func(context.Context) ([]model.Order, error)
	RemoveFn   func(context.Context, time.Time) (int, error)
	Orders     []model.Order
	FindCalls  int

	mu sync.Mutex
}

// Append stores a copy of order.
func (s *OrderRepositoryStub) Append(ctx context.Context, order *model.Order) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = append(s.Orders, order.Clone())
	return nil
}

// FindByID returns matched order or nil.
func (s *OrderRepositoryStub) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	s.mu.Lock()
	s.FindCalls++
	s.mu.Unlock()
	if s.FindByIDFn != nil {
		return s.FindByIDFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.OrderID == orderID {
			found := o.Clone()
			return &found, nil
		}
	}
	return nil, nil
}

// List returns every stored order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// RemoveCreatedBefore drops orders older than cutoff.
func (s *OrderRepositoryStub) RemoveCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, cutoff)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.Orders[:0]
	removed := 0
	for _, o := range s.Orders {
		if o.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	s.Orders = kept
	return removed, nil
}
