package service

import (
	"context"

	"booktrade-backend/internal/domains/review/model"
)

type ReviewService interface {
	ListBookReviews(ctx context.Context, bookID string) ([]*model.ReviewDetail, error)
	ListUserReviews(ctx context.Context, userID string) ([]*model.ReviewDetail, error)
	CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.ReviewDetail, error)
	UpdateReview(ctx context.Context, id string, req *model.UpdateReviewRequest) (*model.ReviewDetail, error)
	DeleteReview(ctx context.Context, id string) error
}
