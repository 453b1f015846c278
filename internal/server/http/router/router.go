package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/orderlunch/internal/config"
	"github.com/polkiloo/orderlunch/internal/server/http/dto"
	"github.com/polkiloo/orderlunch/internal/server/http/handlers"
	"github.com/polkiloo/orderlunch/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LunchFacade, cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("setup validators: %w", err)
		}
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	storeHandler := handlers.NewStoreHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	orderLimiter := middleware.NewRateLimiter(cfg.OrderRateRPS, cfg.OrderRateBurst, middleware.KeyByClientIP)

	api := engine.Group("/api")

	stores := api.Group("/stores")
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.Get)
	stores.POST("", storeHandler.Create)
	stores.PUT("/:id", storeHandler.Update)
	stores.DELETE("/:id", storeHandler.Delete)

	orders := api.Group("/orders")
	orders.GET("", orderHandler.History)
	orders.GET("/pending", orderHandler.Pending)
	orders.GET("/:orderId", orderHandler.Get)
	orders.POST("", orderLimiter.Handler(), orderHandler.Submit)

	return engine, nil
}
