package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/application/watch"
	"github.com/sellora/pos-gateway/internal/config"
	"github.com/sellora/pos-gateway/internal/infrastructure/backend"
	"github.com/sellora/pos-gateway/internal/presentation/http/handler"
	"github.com/sellora/pos-gateway/internal/presentation/http/routes"
	"github.com/sellora/pos-gateway/pkg/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upstream client and per-resource API boundaries
	client := backend.NewClient(&cfg.Upstream)
	authAPI := backend.NewAuthAPI(client)
	batchAPI := backend.NewBatchAPI(client)
	productAPI := backend.NewProductAPI(client)
	userAPI := backend.NewUserAPI(client)

	// Session store
	store := session.NewStore(cfg.Session.TTL, cfg.Session.CookieSecure)

	// Background batch watcher for the cashier screen
	watcher := watch.NewManager(batchAPI.GetByID, cfg.Poll.Interval, cfg.Poll.SnapshotTTL)
	defer watcher.StopAll()

	// Initialize services
	sessionService := service.NewSessionService(authAPI)
	checkoutService := service.NewCheckoutService(batchAPI, watcher)
	dashboardService := service.NewDashboardService(userAPI, productAPI, batchAPI, 30*time.Second)
	productService := service.NewProductService(productAPI)
	userService := service.NewUserService(userAPI)
	salesService := service.NewSalesService(batchAPI)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(sessionService, store),
		Cashier:   handler.NewCashierHandler(checkoutService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Product:   handler.NewProductHandler(productService),
		User:      handler.NewUserHandler(userService),
		Sales:     handler.NewSalesHandler(salesService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Store: store,
		Cfg:   cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Upstream: %s", cfg.Upstream.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
