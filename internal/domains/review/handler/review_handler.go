package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/review/model"
	"booktrade-backend/internal/domains/review/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListBookReviews lists reviews of a book, newest first
// GET /api/v1/reviews/get-book-reviews/:id
func (h *ReviewHandler) ListBookReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListBookReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Fetched book reviews successfully", reviews)
}

// ListUserReviews lists reviews written by a user, newest first
// GET /api/v1/reviews/get-user-reviews/:id
func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListUserReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Fetched user reviews successfully", reviews)
}

// CreateReview creates a review, one per user and book
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created successfully", review)
}

// UpdateReview updates rating, title or content of a review
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	var req model.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Review updated successfully", review)
}

// DeleteReview removes a review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.reviewService.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Review deleted successfully", nil)
}
