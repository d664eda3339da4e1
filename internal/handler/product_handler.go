package handler

import (
	"context"
	"net/http"
	"strconv"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var errInvalidWithReviews = model.NewDomainError(model.KindBadRequest, "with_reviews must be a boolean")

// ProductService defines the product operations the handler needs.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetByIDWithReviews(ctx context.Context, id uuid.UUID) (*model.ProductWithReviews, error)
	Create(ctx context.Context, name string, description *string, price decimal.Decimal, stock int32, categoryID uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Products retrieved successfully!", products))
}

// GetByID handles GET /products/{id}. With with_reviews=true the product is
// returned together with its reviews.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to fetch product", h.logger)
		return
	}

	withReviews := false
	if raw := r.URL.Query().Get("with_reviews"); raw != "" {
		withReviews, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, errInvalidWithReviews, "Failed to fetch product", h.logger)
			return
		}
	}

	if withReviews {
		product, err := h.service.GetByIDWithReviews(r.Context(), id)
		if err != nil {
			writeError(w, err, "Failed to fetch product", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, model.Success("Product retrieved successfully!", product))
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Product retrieved successfully!", product))
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, "Failed to create product", h.logger)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		writeError(w, errInvalidID, "Failed to create product", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), req.Name, req.Description, *req.Price, *req.Stock, categoryID)
	if err != nil {
		writeError(w, err, "Failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.Success("Product created successfully!", product))
}

// Update handles PUT /products/{id}. Only the fields present in the body change.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to update product", h.logger)
		return
	}

	var req model.UpdateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, "Failed to update product", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, req.Patch())
	if err != nil {
		writeError(w, err, "Failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Product updated successfully!", product))
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to delete product", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Empty("Product deleted successfully!"))
}
