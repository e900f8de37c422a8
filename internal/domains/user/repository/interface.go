package repository

import (
	"context"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/user/model"
)

// UserRepository is the user data access contract, favorites included —
// favorites live on the user row so their mutations stay single-document.
type UserRepository interface {
	// CRUD
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUID(ctx context.Context, uid string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	// ListExcluding lists every user except the given one (chat contacts).
	ListExcluding(ctx context.Context, id uuid.UUID) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	DeleteByUID(ctx context.Context, uid string) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Favorites. Each mutation is a single atomic UPDATE on the user row;
	// the bool result reports whether the set actually changed.
	AddFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error)
	RemoveFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error)
	// ToggleFavorite flips membership; nowFavorite is the post-toggle state.
	ToggleFavorite(ctx context.Context, uid, bookID string) (favorites []string, nowFavorite bool, err error)
}
