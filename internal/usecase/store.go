package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/domain/repository"
)

// StoreUseCase manages the restaurant catalogue.
type StoreUseCase struct {
	stores repository.StoreRepository
	logger *slog.Logger
}

// NewStoreUseCase constructs StoreUseCase.
func NewStoreUseCase(stores repository.StoreRepository, logger *slog.Logger) *StoreUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreUseCase{stores: stores, logger: logger.With(slog.String("component", "stores"))}
}

// GetAllStores returns every registered store.
func (u *StoreUseCase) GetAllStores(ctx context.Context) ([]model.Store, error) {
	stores, err := u.stores.GetAll(ctx)
	if err != nil {
		u.logger.Error("list stores failed", slog.String("error", err.Error()))
		return nil, err
	}
	u.logger.Info("stores listed", slog.Int("count", len(stores)))
	return stores, nil
}

// GetStoreByID returns the store or nil when it does not exist.
func (u *StoreUseCase) GetStoreByID(ctx context.Context, id int) (*model.Store, error) {
	store, err := u.stores.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("get store failed", slog.Int("store_id", id), slog.String("error", err.Error()))
		return nil, err
	}
	if store == nil {
		u.logger.Warn("store not found", slog.Int("store_id", id))
		return nil, nil
	}
	return store, nil
}

// AddStore persists store as is. Callers validate fields and check duplicates.
func (u *StoreUseCase) AddStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	added, err := u.stores.Add(ctx, store)
	if err != nil {
		u.logger.Error("add store failed", slog.String("error", err.Error()))
		return nil, err
	}
	u.logger.Info("store added", slog.Int("store_id", added.ID), slog.String("name", added.Name))
	return added, nil
}

// UpdateStore replaces the stored record; nil means the id is unknown.
func (u *StoreUseCase) UpdateStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", domainErrors.ErrInvalidArgument)
	}
	updated, err := u.stores.Update(ctx, store)
	if err != nil {
		u.logger.Error("update store failed", slog.Int("store_id", store.ID), slog.String("error", err.Error()))
		return nil, err
	}
	if updated == nil {
		u.logger.Warn("store to update not found", slog.Int("store_id", store.ID))
		return nil, nil
	}
	u.logger.Info("store updated", slog.Int("store_id", updated.ID))
	return updated, nil
}

// DeleteStore reports whether a store was removed.
func (u *StoreUseCase) DeleteStore(ctx context.Context, id int) (bool, error) {
	deleted, err := u.stores.Delete(ctx, id)
	if err != nil {
		u.logger.Error("delete store failed", slog.Int("store_id", id), slog.String("error", err.Error()))
		return false, err
	}
	if !deleted {
		u.logger.Warn("store to delete not found", slog.Int("store_id", id))
		return false, nil
	}
	u.logger.Info("store deleted", slog.Int("store_id", id))
	return true, nil
}

// IsDuplicateStore reports whether another store already has the same name,
// phone and address, ignoring case. The store with excludeID is skipped.
//
// The answer may be stale by the time the caller writes; RegisterStore and
// ReviseStore perform the same check atomically with the write.
func (u *StoreUseCase) IsDuplicateStore(ctx context.Context, name, phone, address string, excludeID *int) (bool, error) {
	stores, err := u.stores.GetAll(ctx)
	if err != nil {
		return false, err
	}
	dup := findDuplicate(stores, name, phone, address, excludeID) != nil
	if dup {
		u.logger.Warn("duplicate store detected", slog.String("name", name), slog.String("phone", phone))
	}
	return dup, nil
}

// RegisterStore adds store unless a duplicate exists.
func (u *StoreUseCase) RegisterStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", domainErrors.ErrInvalidArgument)
	}
	added, err := u.stores.AddIf(ctx, store, u.rejectDuplicate(store, nil))
	if err != nil {
		u.logger.Warn("register store rejected", slog.String("name", store.Name), slog.String("error", err.Error()))
		return nil, err
	}
	u.logger.Info("store added", slog.Int("store_id", added.ID), slog.String("name", added.Name))
	return added, nil
}

// ReviseStore updates store unless another store has the same identity.
// It returns nil when the store does not exist.
func (u *StoreUseCase) ReviseStore(ctx context.Context, store *model.Store) (*model.Store, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", domainErrors.ErrInvalidArgument)
	}
	id := store.ID
	updated, err := u.stores.UpdateIf(ctx, store, u.rejectDuplicate(store, &id))
	if err != nil {
		u.logger.Warn("revise store rejected", slog.Int("store_id", id), slog.String("error", err.Error()))
		return nil, err
	}
	if updated == nil {
		u.logger.Warn("store to update not found", slog.Int("store_id", id))
		return nil, nil
	}
	u.logger.Info("store updated", slog.Int("store_id", updated.ID))
	return updated, nil
}

func (u *StoreUseCase) rejectDuplicate(store *model.Store, excludeID *int) func([]model.Store) error {
	return func(existing []model.Store) error {
		if dup := findDuplicate(existing, store.Name, store.Phone, store.Address, excludeID); dup != nil {
			return fmt.Errorf("%w: store %q matches store %d", domainErrors.ErrAlreadyExists, store.Name, dup.ID)
		}
		return nil
	}
}

func findDuplicate(stores []model.Store, name, phone, address string, excludeID *int) *model.Store {
	// Casers keep state between calls and must not be shared.
	fold := cases.Fold()
	name, phone, address = fold.String(name), fold.String(phone), fold.String(address)
	for i := range stores {
		s := &stores[i]
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if fold.String(s.Name) == name && fold.String(s.Phone) == phone && fold.String(s.Address) == address {
			return s
		}
	}
	return nil
}
