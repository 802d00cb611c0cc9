package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bean-market/internal/config"
	custommiddleware "bean-market/internal/middleware"
	"bean-market/internal/repository"
	"bean-market/internal/service"
	"bean-market/internal/storage"
	"bean-market/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config  *config.Config
	logger  *zap.Logger
	storage *storage.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, store *storage.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"storage": store.Health(),
		})
	})

	// Initialize repositories
	catalogRepo := repository.NewMemoryCatalogRepository(time.Duration(cfg.Catalog.FetchDelayMs) * time.Millisecond)
	cartStore := repository.NewRedisCartStore(store.Client())
	orderRepo := repository.NewMemoryOrderRepository()
	userRepo := repository.NewMemoryUserRepository()
	refreshTokenRepo := repository.NewMemoryRefreshTokenRepository()

	// Initialize services
	pricer := service.NewPricer(cfg.Pricing)
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret)
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(catalogRepo, cartStore, logger)
	orderService := service.NewOrderService(orderRepo)
	paymentProcessor := service.NewSimulatedPaymentProcessor(time.Duration(cfg.Payment.ProcessingDelayMs) * time.Millisecond)
	checkoutService := service.NewCheckoutService(cartService, orderService, pricer, paymentProcessor, logger)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(userService, cartService, logger)
	catalogHandler := transport.NewCatalogHandler(catalogService, userService, logger)
	cartHandler := transport.NewCartHandler(cartService, userService, pricer, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, userService, logger)
	orderHandler := transport.NewOrderHandler(orderService, userService, logger)

	// Create route middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	buyerMiddleware := custommiddleware.RequireBuyer(logger)
	sellerMiddleware := custommiddleware.RequireSeller(logger)

	// Rate limit the credential endpoints
	rateLimit := custommiddleware.RateLimitMiddleware(store.Client(), custommiddleware.RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		KeyPrefix:         "ratelimit:auth",
	}, logger)
	router.With(rateLimit).Group(func(r chi.Router) {
		authHandler.RegisterRoutes(r, authMiddleware)
	})

	// Register routes
	catalogHandler.RegisterRoutes(router, authMiddleware, sellerMiddleware)
	cartHandler.RegisterRoutes(router, authMiddleware, buyerMiddleware)
	checkoutHandler.RegisterRoutes(router, authMiddleware, buyerMiddleware)
	orderHandler.RegisterRoutes(router, authMiddleware, buyerMiddleware, sellerMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:  cfg,
		logger:  logger,
		storage: store,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			s.logger.Error("Failed to close storage connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
