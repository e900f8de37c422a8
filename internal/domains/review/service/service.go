package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/review/model"
	"booktrade-backend/internal/domains/review/repository"
	userrepo "booktrade-backend/internal/domains/user/repository"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// REVIEW SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   userrepo.UserRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, userRepo userrepo.UserRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *reviewService) ListBookReviews(ctx context.Context, bookID string) ([]*model.ReviewDetail, error) {
	id, err := uuid.Parse(bookID)
	if err != nil {
		return nil, apperrors.Validation("Invalid book ID")
	}

	reviews, err := s.reviewRepo.ListByBook(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list book reviews", err)
	}

	return reviews, nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, userID string) ([]*model.ReviewDetail, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to check user", err)
	}
	if !exists {
		return nil, apperrors.NotFound("User not found")
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list user reviews", err)
	}

	return reviews, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.ReviewDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	userID, _ := uuid.Parse(req.UserID)
	bookID, _ := uuid.Parse(req.BookID)

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to check user", err)
	}
	if !exists {
		return nil, apperrors.NotFound("User not found")
	}

	review := &model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Rating:    *req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	review.UpdatedAt = review.CreatedAt

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == model.ErrDuplicateReview {
			return nil, apperrors.Conflict("You have already reviewed this book")
		}
		return nil, apperrors.Internal("failed to create review", err)
	}

	detail, err := s.reviewRepo.GetDetail(ctx, review.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to load review", err)
	}

	return detail, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, req *model.UpdateReviewRequest) (*model.ReviewDetail, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid review ID")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if !req.HasChanges() {
		return nil, apperrors.Validation("No valid fields to update")
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return nil, apperrors.NotFound("Review not found")
		}
		return nil, apperrors.Internal("failed to get review", err)
	}

	req.Apply(review)

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if err == model.ErrReviewNotFound {
			return nil, apperrors.NotFound("Review not found")
		}
		return nil, apperrors.Internal("failed to update review", err)
	}

	detail, err := s.reviewRepo.GetDetail(ctx, reviewID)
	if err != nil {
		return nil, apperrors.Internal("failed to load review", err)
	}

	return detail, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.Validation("Invalid review ID")
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if err == model.ErrReviewNotFound {
			return apperrors.NotFound("Review not found")
		}
		return apperrors.Internal("failed to delete review", err)
	}

	return nil
}
