package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// UPSERT USER REQUEST
// =====================================================

// UpsertUserRequest creates a user or updates the record matching its uid.
type UpsertUserRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (req UpsertUserRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.UID, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.DisplayName, validation.Required),
		validation.Field(&req.Role, validation.In("", DefaultRole, "admin")),
	)
}

// =====================================================
// UPDATE USER REQUEST
// =====================================================

type UpdateUserRequest struct {
	Email       *string `json:"email"`
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role"`
}

func (req UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Role, validation.In(DefaultRole, "admin")),
	)
}

// HasChanges reports whether at least one field is set.
func (req UpdateUserRequest) HasChanges() bool {
	return req.Email != nil || req.DisplayName != nil || req.Role != nil
}

// =====================================================
// FAVORITES
// =====================================================

// FavoriteRequest adds/toggles a favorite book. Email is required only
// when the user record does not exist yet and is created lazily.
type FavoriteRequest struct {
	BookID string `json:"bookId"`
	Email  string `json:"email"`
}

func (req FavoriteRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.Required),
		validation.Field(&req.Email, is.Email),
	)
}

// Favorite actions reported back to the client.
const (
	FavoriteActionAdded   = "added"
	FavoriteActionRemoved = "removed"
	FavoriteActionAlready = "already_favorite"
	FavoriteActionAbsent  = "not_favorite"
)

// FavoritesResult is the outcome of a favorites mutation.
type FavoritesResult struct {
	Action        string   `json:"action"`
	FavoriteBooks []string `json:"favoriteBooks"`
}
