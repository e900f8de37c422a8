package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"booktrade-backend/internal/domains/book/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) BookRepository {
	return &postgresBookRepository{pool: pool}
}

const bookColumns = `
	id, title, author, category, isbn, location, latitude, longitude,
	condition, exchange, language, tags, price, description, image_url,
	owner_uid, created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	book := &model.Book{}
	var tags []string

	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Category,
		&book.ISBN,
		&book.Location,
		&book.Latitude,
		&book.Longitude,
		&book.Condition,
		&book.Exchange,
		&book.Language,
		pq.Array(&tags),
		&book.Price,
		&book.Description,
		&book.ImageURL,
		&book.OwnerUID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.Tags = tags
	return book, nil
}

func collectBooks(rows pgx.Rows) ([]*model.Book, error) {
	books := []*model.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

func (r *postgresBookRepository) Create(ctx context.Context, book *model.Book) error {
	query := `
		INSERT INTO books (
			id, title, author, category, isbn, location, latitude, longitude,
			condition, exchange, language, tags, price, description, image_url,
			owner_uid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.Category,
		book.ISBN,
		book.Location,
		book.Latitude,
		book.Longitude,
		book.Condition,
		book.Exchange,
		book.Language,
		pq.Array(book.Tags),
		book.Price,
		book.Description,
		book.ImageURL,
		book.OwnerUID,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	book, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *postgresBookRepository) List(ctx context.Context) ([]*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresBookRepository) ListByOwner(ctx context.Context, ownerUID string) ([]*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE owner_uid = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by owner: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresBookRepository) ListWithCoordinates(ctx context.Context) ([]*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books with coordinates: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresBookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, category = $4, isbn = $5, location = $6,
			latitude = $7, longitude = $8, condition = $9, exchange = $10,
			language = $11, tags = $12, price = $13, description = $14,
			image_url = $15, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.Category,
		book.ISBN,
		book.Location,
		book.Latitude,
		book.Longitude,
		book.Condition,
		book.Exchange,
		book.Language,
		pq.Array(book.Tags),
		book.Price,
		book.Description,
		book.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresBookRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}
