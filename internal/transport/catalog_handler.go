package transport

import (
	"net/http"
	"strconv"

	"bean-market/internal/domain"
	"bean-market/internal/middleware"
	"bean-market/internal/repository"
	"bean-market/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductListResponse carries a filtered product listing together
// with the facet options derived from the full catalog.
type ProductListResponse struct {
	Products []domain.Product    `json:"products"`
	Facets   domain.FacetOptions `json:"facets"`
}

// AddProductRequest represents a new seller listing
type AddProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Origin        string   `json:"origin" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	ImageURL      string   `json:"image_url" validate:"required,url"`
	StockQuantity int      `json:"stock_quantity" validate:"gte=0"`
	RoastLevel    string   `json:"roast_level" validate:"required"`
	Process       string   `json:"process" validate:"required"`
	FlavorNotes   []string `json:"flavor_notes"`
	IsOrganic     bool     `json:"is_organic"`
	Acidity       string   `json:"acidity" validate:"required"`
	Body          string   `json:"body" validate:"required"`
	Altitude      string   `json:"altitude"`
	Farm          string   `json:"farm"`
	HarvestPeriod string   `json:"harvest_period"`
	Varieties     string   `json:"varieties"`
	RoastDate     string   `json:"roast_date"`
}

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	catalogService service.CatalogService
	userService    service.UserService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, userService service.UserService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		userService:    userService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware, sellerMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
		r.Get("/{id}/reviews", h.GetReviews)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(sellerMiddleware)
			r.Post("/", h.AddProduct)
		})
	})

	r.Route("/api/seller/products", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(sellerMiddleware)
		r.Get("/", h.ListSellerProducts)
	})
}

// ListProducts returns the catalog filtered by the query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria := parseFilterCriteria(r)

	products, facets, err := h.catalogService.ListProducts(r.Context(), criteria)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Facets:   facets,
	})
}

// GetProduct returns a single product by id.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetReviews returns the reviews for a product.
func (h *CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reviews, err := h.catalogService.GetReviews(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get reviews", zap.Error(err), zap.String("product_id", id))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get reviews")
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, reviews)
}

// ListSellerProducts returns the acting seller's listings.
func (h *CatalogHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	products, err := h.catalogService.ListSellerProducts(r.Context(), user)
	if err != nil {
		if err == service.ErrNotSeller {
			middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		h.logger.Error("Failed to list seller products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list seller products")
		return
	}

	if products == nil {
		products = []domain.Product{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// AddProduct creates a new listing for the acting seller.
func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	user, err := actingUser(r, h.userService)
	if err != nil {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add product validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := &domain.Product{
		Name:          req.Name,
		Origin:        req.Origin,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		StockQuantity: req.StockQuantity,
		RoastLevel:    req.RoastLevel,
		Process:       req.Process,
		FlavorNotes:   req.FlavorNotes,
		IsOrganic:     req.IsOrganic,
		Acidity:       req.Acidity,
		Body:          req.Body,
		Altitude:      req.Altitude,
		Farm:          req.Farm,
		HarvestPeriod: req.HarvestPeriod,
		Varieties:     req.Varieties,
		RoastDate:     req.RoastDate,
	}

	created, err := h.catalogService.AddProduct(r.Context(), user, product)
	if err != nil {
		if err == service.ErrNotSeller {
			middleware.RespondWithError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		h.logger.Error("Failed to add product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add product")
		return
	}

	h.logger.Info("Product added", zap.String("product_id", created.ID), zap.String("seller", user.Name))
	middleware.RespondWithJSON(w, http.StatusCreated, created)
}

// parseFilterCriteria builds filter criteria from the request query.
// Malformed numeric bounds are ignored rather than rejected.
func parseFilterCriteria(r *http.Request) domain.FilterCriteria {
	query := r.URL.Query()

	criteria := domain.FilterCriteria{
		Origins:     query["origin"],
		RoastLevels: query["roast_level"],
		Search:      query.Get("search"),
		OrganicOnly: query.Get("organic") == "true",
	}

	if raw := query.Get("min_price"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = &value
		}
	}
	if raw := query.Get("max_price"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = &value
		}
	}

	return criteria
}
