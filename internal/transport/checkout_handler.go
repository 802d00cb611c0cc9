package transport

import (
	"errors"
	"net/http"

	"bean-market/internal/middleware"
	"bean-market/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutSessionResponse is the rendered state of a checkout flow.
type CheckoutSessionResponse struct {
	ID         string  `json:"id"`
	Step       string  `json:"step"`
	TotalItems int     `json:"total_items"`
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// CheckoutHandler handles HTTP requests for the checkout flow
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	userService     service.UserService
	logger          *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService service.CheckoutService, userService service.UserService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		userService:     userService,
		logger:          logger,
	}
}

// RegisterRoutes registers all checkout routes behind auth and the
// buyer role check.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router, authMiddleware, buyerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(buyerMiddleware)

		r.Post("/", h.Start)
		r.Get("/{sessionID}", h.GetSession)
		r.Post("/{sessionID}/shipping", h.SubmitShipping)
		r.Post("/{sessionID}/back", h.Back)
		r.Post("/{sessionID}/payment", h.SubmitPayment)
		r.Post("/{sessionID}/confirm", h.Confirm)
	})
}

func renderSession(session *service.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		ID:         session.ID.String(),
		Step:       string(session.Step),
		TotalItems: session.Cart.TotalItems(),
		Subtotal:   service.Round2(session.Quote.Subtotal),
		Shipping:   service.Round2(session.Quote.Shipping),
		Tax:        service.Round2(session.Quote.Tax),
		Total:      service.Round2(session.Quote.Total),
	}
}

func (h *CheckoutHandler) respondCheckoutError(w http.ResponseWriter, err error, action string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		fieldErrors := make([]middleware.ValidationError, 0, len(validationErr.Fields))
		for _, field := range validationErr.Fields {
			fieldErrors = append(fieldErrors, middleware.ValidationError{
				Field:   field,
				Message: "This field is required",
			})
		}
		middleware.RespondWithValidationErrors(w, fieldErrors)
		return
	}

	switch err {
	case service.ErrNotBuyer:
		middleware.RespondWithError(w, http.StatusForbidden, "only buyers can check out")
	case service.ErrEmptyCart:
		middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
	case service.ErrSessionNotFound:
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
	case service.ErrInvalidTransition:
		middleware.RespondWithError(w, http.StatusConflict, "operation not valid in the current checkout step")
	case service.ErrPaymentInProgress:
		middleware.RespondWithError(w, http.StatusConflict, "payment is already being processed")
	default:
		h.logger.Error("Checkout operation failed", zap.String("action", action), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "checkout operation failed")
	}
}

func (h *CheckoutHandler) sessionID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	return id, err == nil
}

// Start opens a checkout session from the buyer's current cart.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	session, err := h.checkoutService.Start(r.Context(), user)
	if err != nil {
		h.respondCheckoutError(w, err, "start")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, renderSession(session))
}

// GetSession returns the current state of a checkout session.
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, ok := h.sessionID(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}

	session, err := h.checkoutService.Current(user, sessionID)
	if err != nil {
		h.respondCheckoutError(w, err, "get")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, renderSession(session))
}

// SubmitShipping validates the shipping address and advances the flow.
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, ok := h.sessionID(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}

	var address service.ShippingAddress
	if err := middleware.DecodeJSON(r, &address); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.checkoutService.SubmitShipping(r.Context(), user, sessionID, address)
	if err != nil {
		h.respondCheckoutError(w, err, "shipping")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, renderSession(session))
}

// Back returns the flow from payment to shipping.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, ok := h.sessionID(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}

	session, err := h.checkoutService.Back(user, sessionID)
	if err != nil {
		h.respondCheckoutError(w, err, "back")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, renderSession(session))
}

// SubmitPayment validates the card fields and runs payment processing.
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, ok := h.sessionID(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}

	var details service.PaymentDetails
	if err := middleware.DecodeJSON(r, &details); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.checkoutService.SubmitPayment(r.Context(), user, sessionID, details)
	if err != nil {
		h.respondCheckoutError(w, err, "payment")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, renderSession(session))
}

// Confirm places the order, clears the cart, and ends the session.
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID, ok := h.sessionID(r)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "checkout session not found")
		return
	}

	order, err := h.checkoutService.Confirm(r.Context(), user, sessionID)
	if err != nil {
		h.respondCheckoutError(w, err, "confirm")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}
