package service

import (
	"context"

	"booktrade-backend/internal/domains/order/model"
)

type OrderService interface {
	ListOrders(ctx context.Context, userID string) ([]*model.OrderDetail, error)
	// CreateOrders turns cart items into checkout orders, best effort:
	// malformed entries are skipped and counted, created orders remove
	// their source cart item.
	CreateOrders(ctx context.Context, req *model.CreateOrdersRequest) (*model.BatchResult, error)
}
