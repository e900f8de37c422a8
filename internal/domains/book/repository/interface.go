package repository

import (
	"context"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/book/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]*model.Book, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]*model.Book, error)
	// ListWithCoordinates returns only books that can take part in
	// location queries.
	ListWithCoordinates(ctx context.Context) ([]*model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
