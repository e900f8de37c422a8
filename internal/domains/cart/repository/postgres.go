package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktrade-backend/internal/domains/cart/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresCartRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCartRepository(pool *pgxpool.Pool) CartRepository {
	return &postgresCartRepository{pool: pool}
}

const cartDetailQuery = `
	SELECT c.id, c.created_at,
		u.id, u.display_name, u.email,
		b.id, b.title, b.author, b.price, b.image_url
	FROM cart_items c
	JOIN users u ON u.id = c.user_id
	JOIN books b ON b.id = c.book_id`

func scanCartDetail(row pgx.Row) (*model.CartItemDetail, error) {
	item := &model.CartItemDetail{}
	err := row.Scan(
		&item.ID,
		&item.CreatedAt,
		&item.User.ID,
		&item.User.DisplayName,
		&item.User.Email,
		&item.Book.ID,
		&item.Book.Title,
		&item.Book.Author,
		&item.Book.Price,
		&item.Book.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *postgresCartRepository) Create(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, book_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.UserID, item.BookID, item.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateCartItem
		}
		return fmt.Errorf("failed to create cart item: %w", err)
	}

	return nil
}

func (r *postgresCartRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.CartItemDetail, error) {
	query := cartDetailQuery + ` WHERE c.id = $1`

	item, err := scanCartDetail(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	return item, nil
}

func (r *postgresCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.CartItemDetail, error) {
	query := cartDetailQuery + ` WHERE c.user_id = $1 ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*model.CartItemDetail{}
	for rows.Next() {
		item, err := scanCartDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	return items, nil
}

func (r *postgresCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCartItemNotFound
	}

	return nil
}
