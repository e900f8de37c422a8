package service

import (
	"context"

	"booktrade-backend/internal/domains/cart/model"
)

type CartService interface {
	ListCart(ctx context.Context, userID string) ([]*model.CartItemDetail, error)
	AddToCart(ctx context.Context, req *model.AddCartItemRequest) (*model.CartItemDetail, error)
	DeleteCartItem(ctx context.Context, id string) error
}
