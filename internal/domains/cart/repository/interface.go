package repository

import (
	"context"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/cart/model"
)

type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	GetDetail(ctx context.Context, id uuid.UUID) (*model.CartItemDetail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.CartItemDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
