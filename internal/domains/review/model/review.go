package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "booktrade-backend/internal/domains/user/model"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxTitleLength   = 140
	MaxContentLength = 5000
)

// Review is a user's rating of a book. One review per (user, book),
// enforced at the store level.
type Review struct {
	ID      uuid.UUID `json:"id" db:"id"`
	UserID  uuid.UUID `json:"user_id" db:"user_id"`
	BookID  uuid.UUID `json:"book_id" db:"book_id"`
	Rating  int       `json:"rating" db:"rating"`
	Title   string    `json:"title" db:"title"`
	Content string    `json:"content" db:"content"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewBook is the book shape embedded in review listings.
type ReviewBook struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
}

// ReviewDetail is a review joined with its user and book.
type ReviewDetail struct {
	ID      uuid.UUID          `json:"id"`
	User    usermodel.UserInfo `json:"user"`
	Book    ReviewBook         `json:"book"`
	Rating  int                `json:"rating"`
	Title   string             `json:"title"`
	Content string             `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
