package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/handler/http/response"
)

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Suggest(w http.ResponseWriter, r *http.Request)
}

type ReviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &ReviewHandlerImpl{reviewService: reviewService}
}

// Create implements ReviewHandler.
func (h *ReviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req review.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateReview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.reviewService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Review created successfully", created)
}

// Get implements ReviewHandler.
func (h *ReviewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	resp, err := h.reviewService.GetReview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements ReviewHandler.
func (h *ReviewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListReviews(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reviews)
}

// Update implements ReviewHandler.
func (h *ReviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	var req review.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateReview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.reviewService.UpdateReview(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review updated successfully", nil)
}

// Delete implements ReviewHandler.
func (h *ReviewHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Review deleted successfully", nil)
}

// Suggest implements ReviewHandler. Generates coaching text for the review
// and stores it on the record.
func (h *ReviewHandlerImpl) Suggest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Review ID is required", nil)
		return
	}

	resp, err := h.reviewService.SuggestImprovements(r.Context(), id)
	if err != nil {
		slog.Error("SuggestImprovements error", "error", err, "review_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
