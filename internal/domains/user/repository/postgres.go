package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"booktrade-backend/internal/domains/user/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, uid, email, display_name, role, favorite_books, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	var favorites []string

	err := row.Scan(
		&user.ID,
		&user.UID,
		&user.Email,
		&user.DisplayName,
		&user.Role,
		pq.Array(&favorites),
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.FavoriteBooks = favorites
	return user, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, uid, email, display_name, role, favorite_books, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.UID,
		user.Email,
		user.DisplayName,
		user.Role,
		pq.Array(user.FavoriteBooks),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by uid: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *postgresUserRepository) ListExcluding(ctx context.Context, id uuid.UUID) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id <> $1 ORDER BY display_name`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]*model.User, error) {
	users := []*model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func (r *postgresUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users
		SET email = $2, display_name = $3, role = $4, favorite_books = $5, updated_at = NOW()
		WHERE uid = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		user.UID,
		user.Email,
		user.DisplayName,
		user.Role,
		pq.Array(user.FavoriteBooks),
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

func (r *postgresUserRepository) DeleteByUID(ctx context.Context, uid string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

func (r *postgresUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// =====================================================
// FAVORITES
// =====================================================
// Favorites are a text[] column on the user row, so every mutation is a
// single UPDATE and therefore atomic per user document.

func (r *postgresUserRepository) AddFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	query := `
		UPDATE users
		SET favorite_books = array_append(favorite_books, $2), updated_at = NOW()
		WHERE uid = $1 AND NOT ($2 = ANY(favorite_books))
		RETURNING favorite_books
	`

	var favorites []string
	err := r.pool.QueryRow(ctx, query, uid, bookID).Scan(pq.Array(&favorites))
	if err == nil {
		return favorites, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to add favorite: %w", err)
	}

	// No row updated: either the user is missing or the book is already
	// a favorite. Disambiguate.
	user, err := r.GetByUID(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	return user.FavoriteBooks, false, nil
}

func (r *postgresUserRepository) RemoveFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	query := `
		UPDATE users
		SET favorite_books = array_remove(favorite_books, $2), updated_at = NOW()
		WHERE uid = $1 AND $2 = ANY(favorite_books)
		RETURNING favorite_books
	`

	var favorites []string
	err := r.pool.QueryRow(ctx, query, uid, bookID).Scan(pq.Array(&favorites))
	if err == nil {
		return favorites, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	user, err := r.GetByUID(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	return user.FavoriteBooks, false, nil
}

func (r *postgresUserRepository) ToggleFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	// RETURNING sees the post-update row, so the membership test reports
	// the new state.
	query := `
		UPDATE users
		SET favorite_books = CASE
				WHEN $2 = ANY(favorite_books) THEN array_remove(favorite_books, $2)
				ELSE array_append(favorite_books, $2)
			END,
			updated_at = NOW()
		WHERE uid = $1
		RETURNING favorite_books, $2 = ANY(favorite_books)
	`

	var favorites []string
	var nowFavorite bool
	err := r.pool.QueryRow(ctx, query, uid, bookID).Scan(pq.Array(&favorites), &nowFavorite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, model.ErrUserNotFound
		}
		return nil, false, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return favorites, nowFavorite, nil
}
