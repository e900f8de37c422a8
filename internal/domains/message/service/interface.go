package service

import (
	"context"

	"booktrade-backend/internal/domains/message/model"
	usermodel "booktrade-backend/internal/domains/user/model"
)

type MessageService interface {
	// ListContacts returns every user except the caller, for the chat
	// sidebar.
	ListContacts(ctx context.Context, userID string) ([]*usermodel.User, error)
	ListConversation(ctx context.Context, userID, otherID string) ([]*model.Message, error)
	SendMessage(ctx context.Context, req *model.SendMessageRequest) (*model.Message, error)
}
