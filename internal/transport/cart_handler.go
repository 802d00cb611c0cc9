package transport

import (
	"net/http"

	"bean-market/internal/domain"
	"bean-market/internal/middleware"
	"bean-market/internal/repository"
	"bean-market/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents an add-to-cart payload
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateCartItemRequest represents a quantity update payload. A
// quantity of zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartResponse is the rendered cart with its order summary. Monetary
// values are rounded to two decimals here and nowhere earlier.
type CartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalItems int               `json:"total_items"`
	Subtotal   float64           `json:"subtotal"`
	Shipping   float64           `json:"shipping"`
	Tax        float64           `json:"tax"`
	Total      float64           `json:"total"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartService service.CartService
	userService service.UserService
	pricer      *service.Pricer
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, userService service.UserService, pricer *service.Pricer, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		userService: userService,
		pricer:      pricer,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes behind auth and the buyer
// role check.
func (h *CartHandler) RegisterRoutes(r chi.Router, authMiddleware, buyerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(buyerMiddleware)

		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.UpdateItem)
		r.Delete("/items/{productID}", h.RemoveItem)
	})
}

func (h *CartHandler) renderCart(cart *domain.Cart) CartResponse {
	quote := h.pricer.QuoteFor(cart.Subtotal())

	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}

	return CartResponse{
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		Subtotal:   service.Round2(quote.Subtotal),
		Shipping:   service.Round2(quote.Shipping),
		Tax:        service.Round2(quote.Tax),
		Total:      service.Round2(quote.Total),
	}
}

func (h *CartHandler) respondCartError(w http.ResponseWriter, err error, action string) {
	switch err {
	case service.ErrNotBuyer:
		middleware.RespondWithError(w, http.StatusForbidden, "only buyers can modify a cart")
	case service.ErrInvalidQuantity:
		middleware.RespondWithError(w, http.StatusBadRequest, "quantity must be at least 1")
	case repository.ErrProductNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	default:
		h.logger.Error("Cart operation failed", zap.String("action", action), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "cart operation failed")
	}
}

// GetCart returns the buyer's cart with derived totals.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cart, err := h.cartService.Get(r.Context(), user)
	if err != nil {
		h.respondCartError(w, err, "get")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.renderCart(cart))
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.Add(r.Context(), user, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(w, err, "add")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.renderCart(cart))
}

// UpdateItem overwrites a line's quantity; zero removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID := chi.URLParam(r, "productID")
	cart, err := h.cartService.UpdateQuantity(r.Context(), user, productID, req.Quantity)
	if err != nil {
		h.respondCartError(w, err, "update")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.renderCart(cart))
}

// RemoveItem deletes a line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID := chi.URLParam(r, "productID")
	cart, err := h.cartService.Remove(r.Context(), user, productID)
	if err != nil {
		h.respondCartError(w, err, "remove")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.renderCart(cart))
}

// ClearCart empties the cart and its persisted state.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.cartService.Clear(r.Context(), user); err != nil {
		h.respondCartError(w, err, "clear")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.renderCart(&domain.Cart{}))
}
