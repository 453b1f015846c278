package jsonfile

import (
	"fmt"
	"log/slog"

	"github.com/polkiloo/orderlunch/internal/domain/model"
	"github.com/polkiloo/orderlunch/internal/domain/repository"
)

// Storage acts as repository facade backed by JSON files in one directory.
type Storage struct {
	stores *RecordStore[model.Store, *model.Store]
	orders *Collection[model.Order]
	logger *slog.Logger
}

var (
	_ repository.Factory         = (*Storage)(nil)
	_ repository.StoreRepository = (*RecordStore[model.Store, *model.Store])(nil)
	_ repository.OrderRepository = (*orderRepository)(nil)
)

// New opens (creating when needed) the store and order collections under dir.
func New(dir, storesFile, ordersFile string, logger *slog.Logger, opts ...Option) (*Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	stores, err := OpenCollection[model.Store](dir, storesFile, logger)
	if err != nil {
		return nil, fmt.Errorf("open stores: %w", err)
	}
	orders, err := OpenCollection[model.Order](dir, ordersFile, logger)
	if err != nil {
		return nil, fmt.Errorf("open orders: %w", err)
	}

	logger.Info("json storage ready",
		slog.String("stores", stores.Path()),
		slog.String("orders", orders.Path()),
	)

	return &Storage{
		stores: NewRecordStore[model.Store, *model.Store](stores, opts...),
		orders: orders,
		logger: logger,
	}, nil
}

// Factory methods for domain repositories.
func (s *Storage) Stores() repository.StoreRepository {
	return s.stores
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{orders: s.orders}
}
