package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktrade-backend/internal/domains/message/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &postgresMessageRepository{pool: pool}
}

func (r *postgresMessageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, text, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID, message.SenderID, message.ReceiverID,
		message.Text, message.ImageURL, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (r *postgresMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, text, image_url, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
			OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	messages := []*model.Message{}
	for rows.Next() {
		message := &model.Message{}
		err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.ReceiverID,
			&message.Text,
			&message.ImageURL,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	return messages, nil
}
