package handler

import (
	"context"
	"net/http"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReviewService defines the review operations the handler needs.
type ReviewService interface {
	AddReview(ctx context.Context, productID, userID uuid.UUID, comment *string, rating *int32) (*model.ProductReview, error)
}

// ReviewHandler handles product review requests.
type ReviewHandler struct {
	service ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Create handles POST /products/{id}/review.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r)
	if err != nil {
		writeError(w, err, "Failed to create product review", h.logger)
		return
	}

	var req model.CreateReviewRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err, "Failed to create product review", h.logger)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, errInvalidID, "Failed to create product review", h.logger)
		return
	}

	review, err := h.service.AddReview(r.Context(), productID, userID, req.Comment, req.Rating)
	if err != nil {
		writeError(w, err, "Failed to create product review", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.Success("Product review created successfully!", review))
}
