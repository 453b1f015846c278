package jsonfile

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderlunch/internal/config"
	"github.com/polkiloo/orderlunch/internal/domain/repository"
)

// Module wires JSON file storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.StoreRepository { return s.Stores() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Config.DataDir, p.Config.StoresFile, p.Config.OrdersFile, p.Logger)
}
