package service

import (
	"context"

	"booktrade-backend/internal/domains/book/model"
)

type BookService interface {
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, id string) (*model.Book, error)
	ListBooks(ctx context.Context) ([]*model.Book, error)
	ListBooksByOwner(ctx context.Context, ownerUID string) ([]*model.Book, error)
	SearchByLocation(ctx context.Context, query *model.LocationQuery) ([]*model.NearbyBook, error)
	UpdateBook(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
}
