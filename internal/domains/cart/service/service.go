package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookmodel "booktrade-backend/internal/domains/book/model"
	bookrepo "booktrade-backend/internal/domains/book/repository"
	"booktrade-backend/internal/domains/cart/model"
	"booktrade-backend/internal/domains/cart/repository"
	usermodel "booktrade-backend/internal/domains/user/model"
	userrepo "booktrade-backend/internal/domains/user/repository"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// CART SERVICE IMPLEMENTATION
// =====================================================

type cartService struct {
	cartRepo repository.CartRepository
	userRepo userrepo.UserRepository
	bookRepo bookrepo.BookRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	userRepo userrepo.UserRepository,
	bookRepo bookrepo.BookRepository,
) CartService {
	return &cartService{
		cartRepo: cartRepo,
		userRepo: userRepo,
		bookRepo: bookRepo,
	}
}

func (s *cartService) ListCart(ctx context.Context, userID string) ([]*model.CartItemDetail, error) {
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

	items, err := s.cartRepo.ListByUser(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list cart items", err)
	}

	return items, nil
}

func (s *cartService) AddToCart(ctx context.Context, req *model.AddCartItemRequest) (*model.CartItemDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	userID, _ := uuid.Parse(req.UserID)
	bookID, _ := uuid.Parse(req.BookID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == usermodel.ErrUserNotFound {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if err == bookmodel.ErrBookNotFound {
			return nil, apperrors.NotFound("Book not found")
		}
		return nil, apperrors.Internal("failed to get book", err)
	}

	// Adding your own listing is a business rule violation, not a conflict.
	if book.OwnerUID != "" && user.UID != "" && book.OwnerUID == user.UID {
		return nil, apperrors.BusinessRule("This is your listing. You cannot add your own book to the cart")
	}

	item := &model.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now(),
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		if err == model.ErrDuplicateCartItem {
			return nil, apperrors.Conflict("Book already in cart")
		}
		return nil, apperrors.Internal("failed to add book to cart", err)
	}

	detail, err := s.cartRepo.GetDetail(ctx, item.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to load cart item", err)
	}

	return detail, nil
}

func (s *cartService) DeleteCartItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.Validation("Invalid cart item ID")
	}

	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		if err == model.ErrCartItemNotFound {
			return apperrors.NotFound("Cart item not found")
		}
		return apperrors.Internal("failed to delete cart item", err)
	}

	return nil
}
