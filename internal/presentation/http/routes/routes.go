package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/config"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/presentation/http/handler"
	"github.com/sellora/pos-gateway/internal/presentation/http/middleware"
	"github.com/sellora/pos-gateway/pkg/session"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Cashier   *handler.CashierHandler
	Dashboard *handler.DashboardHandler
	Product   *handler.ProductHandler
	User      *handler.UserHandler
	Sales     *handler.SalesHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Store *session.Store
	Cfg   *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no session required)
		registerAuthRoutes(v1, h)

		// Session-gated routes
		protected := v1.Group("")
		protected.Use(middleware.SessionMiddleware(deps.Store))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerCashierRoutes(protected, h)
		registerAdminRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.GET("/session", h.Auth.Session)
		auth.POST("/logout", h.Auth.Logout)
	}
}

func registerCashierRoutes(protected *gin.RouterGroup, h *Handlers) {
	cashier := protected.Group("/cashier")
	{
		cashier.GET("/batch", h.Cashier.GetBatch)
		cashier.GET("/batch/:id/live", h.Cashier.LiveBatch)
		cashier.POST("/batch/:id/totals", h.Cashier.Totals)
		cashier.POST("/batch/:id/checkout", h.Cashier.Checkout)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		admin.GET("/stats", h.Dashboard.GetStats)

		admin.GET("/products", h.Product.List)
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.GET("/users", h.User.List)
		admin.POST("/users", h.User.Create)

		admin.GET("/batches", h.Sales.List)
		admin.PUT("/batches/:id/status", h.Sales.UpdateStatus)
	}
}
