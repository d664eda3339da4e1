package handler

import (
	"context"
	"net/http"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CategoryService defines the category operations the handler needs.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Categories retrieved successfully!", categories))
}

// GetByID handles GET /categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to fetch category", h.logger)
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to fetch category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Category retrieved successfully!", category))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, "Failed to create category", h.logger)
		return
	}

	category, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err, "Failed to create category", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.Success("Category created successfully!", category))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to update category", h.logger)
		return
	}

	var req model.UpdateCategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, "Failed to update category", h.logger)
		return
	}

	category, err := h.service.Update(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, err, "Failed to update category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Success("Category updated successfully!", category))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to delete category", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete category", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Empty("Category deleted successfully!"))
}
