package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/noorboutique/backend/internal/application/catalog"
	orderapp "github.com/noorboutique/backend/internal/application/order"
	"github.com/noorboutique/backend/internal/domain/catalog"
	"github.com/noorboutique/backend/internal/domain/order"
	"github.com/noorboutique/backend/internal/domain/shared"
	"github.com/noorboutique/backend/internal/infrastructure/airtable"
	"github.com/noorboutique/backend/internal/infrastructure/cache"
	"github.com/noorboutique/backend/internal/infrastructure/config"
	"github.com/noorboutique/backend/internal/infrastructure/logger"
	"github.com/noorboutique/backend/internal/interfaces/http/handler"
	"github.com/noorboutique/backend/internal/interfaces/http/middleware"
	"github.com/noorboutique/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Noor Boutique backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect the Airtable record store. A missing API key is not fatal;
	// the server boots with stand-in repositories and every store-backed
	// endpoint reports a configuration error until credentials arrive.
	var (
		productRepo  catalog.ProductRepository
		orderRepo    order.Repository
		customerRepo order.CustomerRepository
	)
	storeConfigured := false
	airtableCfg := &airtable.Config{
		APIKey:         cfg.Airtable.APIKey,
		BaseID:         cfg.Airtable.BaseID,
		ProductsTable:  cfg.Airtable.ProductsTable,
		OrdersTable:    cfg.Airtable.OrdersTable,
		CustomersTable: cfg.Airtable.CustomersTable,
		BaseURL:        cfg.Airtable.BaseURL,
		TimeoutSeconds: cfg.Airtable.TimeoutSeconds,
	}
	client, err := airtable.NewClient(airtableCfg, log)
	if err != nil {
		log.Warn("Record store not configured, store-backed endpoints will fail", zap.Error(err))
		productRepo = airtable.UnconfiguredProductRepository{}
		orderRepo = airtable.UnconfiguredOrderRepository{}
	} else {
		storeConfigured = true
		productRepo = airtable.NewProductRepository(client)
		orderRepo = airtable.NewOrderRepository(client)
		customerRepo = airtable.NewCustomerRepository(client)
		log.Info("Record store connected", zap.String("base_id", cfg.Airtable.BaseID))
	}

	// Idempotency store: Redis when enabled, in-memory otherwise
	var idempotencyStore shared.IdempotencyStore
	if cfg.Redis.Enabled {
		factory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
		idempotencyStore, err = factory.CreateStore()
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
	} else {
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
	}
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	idemCfg := shared.IdempotencyConfig{
		TTL:     cfg.Idempotency.TTL,
		Enabled: cfg.Idempotency.Enabled,
	}

	// Initialize application services
	imageCache := cache.NewCategoryImageCache(cache.WithImageTTL(cfg.Cache.CategoryImageTTL))
	productService := catalogapp.NewProductService(productRepo)
	categoryImageService := catalogapp.NewCategoryImageService(productRepo, imageCache, log)
	intakeService := orderapp.NewIntakeService(orderRepo, customerRepo, idempotencyStore, idemCfg, log)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, categoryImageService)
	orderHandler := handler.NewOrderHandler(intakeService)
	systemHandler := handler.NewSystemHandler(version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(storeConfigured))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (products, category images)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/:id/variants", productHandler.Variants)
	catalogRoutes.GET("/categories/:category/image", productHandler.CategoryImage)

	// Order domain (storefront order submission)
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderHandler.Create)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(catalogRoutes).
		Register(orderRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(storeConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := "ok"
		if !storeConfigured {
			store = "unconfigured"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":       "healthy",
			"time":         time.Now().Format(time.RFC3339),
			"record_store": store,
		})
	}
}
