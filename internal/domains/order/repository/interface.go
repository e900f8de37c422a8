package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"booktrade-backend/internal/domains/order/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	// CreateTx inserts inside a caller-owned transaction (trade acceptance).
	CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.OrderDetail, error)
	// ExistsByUserAndBook reports whether the user already obtained the book.
	ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
}
