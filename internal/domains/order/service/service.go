package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	cartrepo "booktrade-backend/internal/domains/cart/repository"
	"booktrade-backend/internal/domains/order/model"
	"booktrade-backend/internal/domains/order/repository"
	userrepo "booktrade-backend/internal/domains/user/repository"
	apperrors "booktrade-backend/internal/shared/errors"
	"booktrade-backend/pkg/logger"
)

// =====================================================
// ORDER SERVICE IMPLEMENTATION
// =====================================================

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  cartrepo.CartRepository
	userRepo  userrepo.UserRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo cartrepo.CartRepository,
	userRepo userrepo.UserRepository,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		userRepo:  userRepo,
	}
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]*model.OrderDetail, error) {
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

	orders, err := s.orderRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list orders", err)
	}

	return orders, nil
}

func (s *orderService) CreateOrders(ctx context.Context, req *model.CreateOrdersRequest) (*model.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	result := &model.BatchResult{
		Created: []*model.Order{},
		Skipped: []model.SkippedItem{},
	}

	for _, item := range req.CartItems {
		userID, err := uuid.Parse(item.UserID)
		if err != nil {
			result.Skipped = append(result.Skipped, model.SkippedItem{Item: item, Reason: "invalid user ID"})
			continue
		}
		bookID, err := uuid.Parse(item.BookID)
		if err != nil {
			result.Skipped = append(result.Skipped, model.SkippedItem{Item: item, Reason: "invalid book ID"})
			continue
		}

		order := &model.Order{
			ID:        uuid.New(),
			UserID:    userID,
			BookID:    bookID,
			Source:    model.SourceCheckout,
			CreatedAt: time.Now(),
		}

		if err := s.orderRepo.Create(ctx, order); err != nil {
			return nil, apperrors.Internal("failed to create order", err)
		}
		result.Created = append(result.Created, order)

		// Remove the source cart item. A missing item is not an error:
		// it may already be gone.
		if cartItemID, err := uuid.Parse(item.ID); err == nil {
			if err := s.cartRepo.Delete(ctx, cartItemID); err != nil {
				logger.Warn("failed to delete ordered cart item", err)
			}
		}
	}

	return result, nil
}
