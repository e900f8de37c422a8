package service

import (
	"context"

	"booktrade-backend/internal/domains/user/model"
)

type UserService interface {
	// Upsert creates the user or updates the record matching req.UID.
	Upsert(ctx context.Context, req model.UpsertUserRequest) (*model.User, error)
	GetByUID(ctx context.Context, uid string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, uid string, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, uid string) error
}

// FavoritesService manages the favorite-book set on a user document.
// Users are created lazily on first interaction when an email is supplied.
type FavoritesService interface {
	GetFavorites(ctx context.Context, uid, email string) ([]string, error)
	AddFavorite(ctx context.Context, uid string, req model.FavoriteRequest) (*model.FavoritesResult, error)
	RemoveFavorite(ctx context.Context, uid, bookID string) (*model.FavoritesResult, error)
	ToggleFavorite(ctx context.Context, uid string, req model.FavoriteRequest) (*model.FavoritesResult, error)
}
