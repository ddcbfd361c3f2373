package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell-books/apiserver/internal/services"
	"github.com/inkwell-books/apiserver/internal/store"
)

// ReviewHandler provides the token-gated review mutation endpoints.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler constructs a handler over the review service.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRouter registers the protected review routes on the given
// router. Every route runs behind the auth middleware.
func ReviewRouter(r chi.Router, reviewService *services.ReviewService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewReviewHandler(reviewService)

	r.Use(authMiddleware)
	r.Put("/review/{isbn}", handler.UpsertReview)
	r.Delete("/review/{isbn}", handler.DeleteReview)
}

// UpsertReview creates or replaces the caller's review on a book.
func (h *ReviewHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	isbn, err := pathParam(r, "isbn")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Review) == "" {
		writeError(w, http.StatusBadRequest, "review text is required")
		return
	}

	reviews, err := h.reviewService.Upsert(r.Context(), isbn, username, req.Review)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "book not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save review")
		return
	}
	writeJSON(w, http.StatusOK, ReviewsResponse{Reviews: reviews})
}

// DeleteReview removes the caller's review from a book.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	username, err := usernameFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	isbn, err := pathParam(r, "isbn")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.reviewService.Delete(r.Context(), isbn, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "review not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete review")
		return
	}
	writeJSON(w, http.StatusOK, ReviewsResponse{Reviews: reviews})
}

// ReviewRequest is the body of a review upsert.
type ReviewRequest struct {
	Review string `json:"review"`
}
