package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktrade-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewDetailQuery = `
	SELECT r.id, r.rating, r.title, r.content, r.created_at, r.updated_at,
		u.id, u.display_name, u.email,
		b.id, b.title, b.author
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN books b ON b.id = r.book_id`

func scanReviewDetail(row pgx.Row) (*model.ReviewDetail, error) {
	review := &model.ReviewDetail{}
	err := row.Scan(
		&review.ID,
		&review.Rating,
		&review.Title,
		&review.Content,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.User.ID,
		&review.User.DisplayName,
		&review.User.Email,
		&review.Book.ID,
		&review.Book.Title,
		&review.Book.Author,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func collectReviewDetails(rows pgx.Rows) ([]*model.ReviewDetail, error) {
	reviews := []*model.ReviewDetail{}
	for rows.Next() {
		review, err := scanReviewDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}
	return reviews, nil
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, book_id, rating, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID, review.UserID, review.BookID,
		review.Rating, review.Title, review.Content,
		review.CreatedAt, review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateReview
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `
		SELECT id, user_id, book_id, rating, title, content, created_at, updated_at
		FROM reviews WHERE id = $1
	`

	review := &model.Review{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.BookID,
		&review.Rating,
		&review.Title,
		&review.Content,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error) {
	query := reviewDetailQuery + ` WHERE r.id = $1`

	review, err := scanReviewDetail(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.ReviewDetail, error) {
	query := reviewDetailQuery + ` WHERE r.book_id = $1 ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book reviews: %w", err)
	}
	defer rows.Close()

	return collectReviewDetails(rows)
}

func (r *postgresReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.ReviewDetail, error) {
	query := reviewDetailQuery + ` WHERE r.user_id = $1 ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user reviews: %w", err)
	}
	defer rows.Close()

	return collectReviewDetails(rows)
}

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, title = $3, content = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, review.ID, review.Rating, review.Title, review.Content)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}
