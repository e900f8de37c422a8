package model

import (
	"time"

	"github.com/google/uuid"

	bookmodel "booktrade-backend/internal/domains/book/model"
	usermodel "booktrade-backend/internal/domains/user/model"
)

// CartItem links a user to a book they intend to order.
// (user_id, book_id) is unique at the store level.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	BookID    uuid.UUID `json:"book_id" db:"book_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CartItemDetail is a cart item joined with its user and book.
type CartItemDetail struct {
	ID        uuid.UUID          `json:"id"`
	User      usermodel.UserInfo `json:"user"`
	Book      bookmodel.BookInfo `json:"book"`
	CreatedAt time.Time          `json:"created_at"`
}
