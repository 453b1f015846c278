package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderlunch/internal/app"
	"github.com/polkiloo/orderlunch/internal/config"
	"github.com/polkiloo/orderlunch/internal/logger"
	"github.com/polkiloo/orderlunch/internal/server/http/router"
	"github.com/polkiloo/orderlunch/internal/storage/jsonfile"
	"github.com/polkiloo/orderlunch/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		jsonfile.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
