package repository

import (
	"context"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/message/model"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// ListConversation returns the messages between two users, both
	// directions, oldest first.
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*model.Message, error)
}
