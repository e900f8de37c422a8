package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktrade-backend/internal/domains/order/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresOrderRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &postgresOrderRepository{pool: pool}
}

const insertOrderQuery = `
	INSERT INTO orders (id, user_id, book_id, source, created_at)
	VALUES ($1, $2, $3, $4, $5)
`

func (r *postgresOrderRepository) Create(ctx context.Context, order *model.Order) error {
	_, err := r.pool.Exec(ctx, insertOrderQuery,
		order.ID, order.UserID, order.BookID, order.Source, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *postgresOrderRepository) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	_, err := tx.Exec(ctx, insertOrderQuery,
		order.ID, order.UserID, order.BookID, order.Source, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *postgresOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.OrderDetail, error) {
	query := `
		SELECT o.id, o.source, o.created_at,
			u.id, u.display_name, u.email,
			b.id, b.title, b.author, b.price, b.image_url, b.isbn, b.exchange
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN books b ON b.id = o.book_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*model.OrderDetail{}
	for rows.Next() {
		order := &model.OrderDetail{}
		err := rows.Scan(
			&order.ID,
			&order.Source,
			&order.CreatedAt,
			&order.User.ID,
			&order.User.DisplayName,
			&order.User.Email,
			&order.Book.ID,
			&order.Book.Title,
			&order.Book.Author,
			&order.Book.Price,
			&order.Book.ImageURL,
			&order.Book.ISBN,
			&order.Book.Exchange,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}

func (r *postgresOrderRepository) ExistsByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM orders WHERE user_id = $1 AND book_id = $2)`,
		userID, bookID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}
	return exists, nil
}
