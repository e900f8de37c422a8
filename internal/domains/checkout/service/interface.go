package service

import (
	"context"

	"booktrade-backend/internal/domains/checkout/model"
)

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, req *model.CreateCheckoutSessionRequest) (*model.CheckoutSession, error)
}
