package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. UID is the external identity id (set by
// the identity provider), distinct from the store's record id.
type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UID           string    `json:"uid" db:"uid"`
	Email         string    `json:"email" db:"email"`
	DisplayName   string    `json:"display_name" db:"display_name"`
	Role          string    `json:"role" db:"role"`
	FavoriteBooks []string  `json:"favorite_books" db:"favorite_books"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const DefaultRole = "user"

// UserInfo is the reduced shape embedded in joined responses
// (cart items, reviews, trades, contacts).
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
}

func (u *User) Info() UserInfo {
	return UserInfo{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}
