package repository

import (
	"context"

	"github.com/polkiloo/orderlunch/internal/domain/model"
)

// StoreRepository describes persistence operations for stores.
// Lookups of missing records return nil without error.
type StoreRepository interface {
	GetAll(ctx context.Context) ([]model.Store, error)
	GetByID(ctx context.Context, id int) (*model.Store, error)
	Add(ctx context.Context, store *model.Store) (*model.Store, error)
	Update(ctx context.Context, store *model.Store) (*model.Store, error)
	Delete(ctx context.Context, id int) (bool, error)
	// AddIf inserts store when check accepts the current collection. check runs
	// under the collection lock, so the decision and the write cannot interleave
	// with other writers.
	AddIf(ctx context.Context, store *model.Store, check func(existing []model.Store) error) (*model.Store, error)
	// UpdateIf is the conditional counterpart of Update.
	UpdateIf(ctx context.Context, store *model.Store, check func(existing []model.Store) error) (*model.Store, error)
}
