package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/message/model"
	"booktrade-backend/internal/domains/message/repository"
	usermodel "booktrade-backend/internal/domains/user/model"
	userrepo "booktrade-backend/internal/domains/user/repository"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// MESSAGE SERVICE IMPLEMENTATION
// =====================================================

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    userrepo.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo userrepo.UserRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *messageService) ListContacts(ctx context.Context, userID string) ([]*usermodel.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	users, err := s.userRepo.ListExcluding(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to list contacts", err)
	}

	return users, nil
}

func (s *messageService) ListConversation(ctx context.Context, userID, otherID string) ([]*model.Message, error) {
	myID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}
	theirID, err := uuid.Parse(otherID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	messages, err := s.messageRepo.ListConversation(ctx, myID, theirID)
	if err != nil {
		return nil, apperrors.Internal("failed to list conversation", err)
	}

	return messages, nil
}

func (s *messageService) SendMessage(ctx context.Context, req *model.SendMessageRequest) (*model.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	senderID, _ := uuid.Parse(req.SenderID)
	receiverID, _ := uuid.Parse(req.ReceiverID)

	message := &model.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       req.Text,
		ImageURL:   req.Image,
		CreatedAt:  time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, apperrors.Internal("failed to send message", err)
	}

	return message, nil
}
