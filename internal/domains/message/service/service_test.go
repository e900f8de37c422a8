package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktrade-backend/internal/domains/message/model"
	usermodel "booktrade-backend/internal/domains/user/model"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// FAKES
// =====================================================

type fakeMessageRepo struct {
	messages []*model.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *model.Message) error {
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*model.Message, error) {
	conversation := []*model.Message{}
	for _, message := range r.messages {
		sameDirection := message.SenderID == userA && message.ReceiverID == userB
		reverseDirection := message.SenderID == userB && message.ReceiverID == userA
		if sameDirection || reverseDirection {
			conversation = append(conversation, message)
		}
	}
	sort.Slice(conversation, func(i, j int) bool {
		return conversation[i].CreatedAt.Before(conversation[j].CreatedAt)
	})
	return conversation, nil
}

type fakeUserRepo struct {
	users []*usermodel.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) List(ctx context.Context) ([]*usermodel.User, error) { return r.users, nil }
func (r *fakeUserRepo) ListExcluding(ctx context.Context, id uuid.UUID) ([]*usermodel.User, error) {
	users := []*usermodel.User{}
	for _, user := range r.users {
		if user.ID != id {
			users = append(users, user)
		}
	}
	return users, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) DeleteByUID(ctx context.Context, uid string) error      { return nil }
func (r *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}
func (r *fakeUserRepo) AddFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}
func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}
func (r *fakeUserRepo) ToggleFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	return nil, false, nil
}

// =====================================================
// TESTS
// =====================================================

func TestSendMessage(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	svc := NewMessageService(messageRepo, &fakeUserRepo{})

	message, err := svc.SendMessage(context.Background(), &model.SendMessageRequest{
		SenderID:   uuid.New().String(),
		ReceiverID: uuid.New().String(),
		Text:       "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello", message.Text)
	assert.Len(t, messageRepo.messages, 1)
}

func TestSendMessageImageOnly(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{}, &fakeUserRepo{})

	message, err := svc.SendMessage(context.Background(), &model.SendMessageRequest{
		SenderID:   uuid.New().String(),
		ReceiverID: uuid.New().String(),
		Image:      "http://img/photo.jpg",
	})
	require.NoError(t, err)
	assert.Empty(t, message.Text)
	assert.Equal(t, "http://img/photo.jpg", message.ImageURL)
}

func TestSendMessageNeedsTextOrImage(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{}, &fakeUserRepo{})

	_, err := svc.SendMessage(context.Background(), &model.SendMessageRequest{
		SenderID:   uuid.New().String(),
		ReceiverID: uuid.New().String(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "text or image is required", apperrors.Message(err))
}

func TestListContactsExcludesCaller(t *testing.T) {
	me := &usermodel.User{ID: uuid.New(), DisplayName: "Me"}
	other := &usermodel.User{ID: uuid.New(), DisplayName: "Other"}
	svc := NewMessageService(&fakeMessageRepo{}, &fakeUserRepo{users: []*usermodel.User{me, other}})

	contacts, err := svc.ListContacts(context.Background(), me.ID.String())
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, other.ID, contacts[0].ID)
}

func TestListConversationBothDirections(t *testing.T) {
	messageRepo := &fakeMessageRepo{}
	svc := NewMessageService(messageRepo, &fakeUserRepo{})

	alice := uuid.New()
	bob := uuid.New()
	eve := uuid.New()

	base := time.Now()
	messageRepo.messages = []*model.Message{
		{ID: uuid.New(), SenderID: bob, ReceiverID: alice, Text: "reply", CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), SenderID: alice, ReceiverID: bob, Text: "hi", CreatedAt: base},
		{ID: uuid.New(), SenderID: eve, ReceiverID: alice, Text: "unrelated", CreatedAt: base},
	}

	conversation, err := svc.ListConversation(context.Background(), alice.String(), bob.String())
	require.NoError(t, err)

	require.Len(t, conversation, 2)
	assert.Equal(t, "hi", conversation[0].Text)
	assert.Equal(t, "reply", conversation[1].Text)
}

func TestListConversationInvalidID(t *testing.T) {
	svc := NewMessageService(&fakeMessageRepo{}, &fakeUserRepo{})

	_, err := svc.ListConversation(context.Background(), "bad", uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
