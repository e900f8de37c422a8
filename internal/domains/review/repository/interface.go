package repository

import (
	"context"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.ReviewDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.ReviewDetail, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}
