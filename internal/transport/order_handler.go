package transport

import (
	"net/http"

	"bean-market/internal/domain"
	"bean-market/internal/middleware"
	"bean-market/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for order history
type OrderHandler struct {
	orderService service.OrderService
	userService  service.UserService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, userService service.UserService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
		logger:       logger,
	}
}

// RegisterRoutes registers the buyer and seller order routes.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware, buyerMiddleware, sellerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(buyerMiddleware)
		r.Get("/", h.ListOrders)
	})

	r.Route("/api/seller/orders", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(sellerMiddleware)
		r.Get("/", h.ListSellerOrders)
	})
}

// ListOrders returns the buyer's order history.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.orderService.History(r.Context(), user)
	if err != nil {
		if err == service.ErrNotBuyer {
			middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// ListSellerOrders returns the seller-facing order summaries.
func (h *OrderHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summaries, err := h.orderService.SellerSummaries(r.Context(), user)
	if err != nil {
		if err == service.ErrNotSeller {
			middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		h.logger.Error("Failed to list seller orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list seller orders")
		return
	}

	if summaries == nil {
		summaries = []domain.OrderSummary{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, summaries)
}
