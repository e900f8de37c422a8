package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktrade-backend/internal/domains/user/model"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// FAKE
// =====================================================

type fakeUserRepo struct {
	byUID map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUID: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	copied := *user
	r.byUID[user.UID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, user := range r.byUID {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	user, ok := r.byUID[uid]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	for _, user := range r.byUID {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) ListExcluding(ctx context.Context, id uuid.UUID) ([]*model.User, error) {
	users := []*model.User{}
	for _, user := range r.byUID {
		if user.ID != id {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := r.byUID[user.UID]; !ok {
		return model.ErrUserNotFound
	}
	copied := *user
	r.byUID[user.UID] = &copied
	return nil
}

func (r *fakeUserRepo) DeleteByUID(ctx context.Context, uid string) error {
	if _, ok := r.byUID[uid]; !ok {
		return model.ErrUserNotFound
	}
	delete(r.byUID, uid)
	return nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, user := range r.byUID {
		if user.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) AddFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	user, ok := r.byUID[uid]
	if !ok {
		return nil, false, model.ErrUserNotFound
	}
	for _, fav := range user.FavoriteBooks {
		if fav == bookID {
			return user.FavoriteBooks, false, nil
		}
	}
	user.FavoriteBooks = append(user.FavoriteBooks, bookID)
	return user.FavoriteBooks, true, nil
}

func (r *fakeUserRepo) RemoveFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	user, ok := r.byUID[uid]
	if !ok {
		return nil, false, model.ErrUserNotFound
	}
	for i, fav := range user.FavoriteBooks {
		if fav == bookID {
			user.FavoriteBooks = append(user.FavoriteBooks[:i], user.FavoriteBooks[i+1:]...)
			return user.FavoriteBooks, true, nil
		}
	}
	return user.FavoriteBooks, false, nil
}

func (r *fakeUserRepo) ToggleFavorite(ctx context.Context, uid, bookID string) ([]string, bool, error) {
	user, ok := r.byUID[uid]
	if !ok {
		return nil, false, model.ErrUserNotFound
	}
	for i, fav := range user.FavoriteBooks {
		if fav == bookID {
			user.FavoriteBooks = append(user.FavoriteBooks[:i], user.FavoriteBooks[i+1:]...)
			return user.FavoriteBooks, false, nil
		}
	}
	user.FavoriteBooks = append(user.FavoriteBooks, bookID)
	return user.FavoriteBooks, true, nil
}

func seedUser(repo *fakeUserRepo, uid, email string, favorites ...string) *model.User {
	user := &model.User{
		ID:            uuid.New(),
		UID:           uid,
		Email:         email,
		DisplayName:   "Seeded User",
		Role:          model.DefaultRole,
		FavoriteBooks: append([]string{}, favorites...),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	repo.byUID[uid] = user
	return user
}

// =====================================================
// USERS
// =====================================================

func TestUpsertCreatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Upsert(context.Background(), model.UpsertUserRequest{
		UID:         "uid-1",
		Email:       "reader@example.com",
		DisplayName: "Reader",
	})
	require.NoError(t, err)

	assert.Equal(t, model.DefaultRole, user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotNil(t, user.FavoriteBooks)
}

func TestUpsertUpdatesExistingUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	existing := seedUser(repo, "uid-1", "old@example.com")

	user, err := svc.Upsert(context.Background(), model.UpsertUserRequest{
		UID:         "uid-1",
		Email:       "new@example.com",
		DisplayName: "Renamed",
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Renamed", user.DisplayName)
	assert.Len(t, repo.byUID, 1)
}

func TestUpsertInvalidEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Upsert(context.Background(), model.UpsertUserRequest{
		UID:         "uid-1",
		Email:       "not-an-email",
		DisplayName: "Reader",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetByUIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetByUID(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateUserNoFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(repo, "uid-1", "reader@example.com")

	_, err := svc.Update(context.Background(), "uid-1", model.UpdateUserRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	seedUser(repo, "uid-1", "reader@example.com")

	require.NoError(t, svc.Delete(context.Background(), "uid-1"))

	err := svc.Delete(context.Background(), "uid-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// =====================================================
// FAVORITES
// =====================================================

func TestGetFavoritesLazyCreate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewFavoritesService(repo)

	favorites, err := svc.GetFavorites(context.Background(), "new-uid", "bookworm@example.com")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	created, ok := repo.byUID["new-uid"]
	require.True(t, ok)
	assert.Equal(t, "bookworm", created.DisplayName)
	assert.Equal(t, model.DefaultRole, created.Role)
}

func TestGetFavoritesLazyCreateNeedsEmail(t *testing.T) {
	svc := NewFavoritesService(newFakeUserRepo())

	_, err := svc.GetFavorites(context.Background(), "new-uid", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddFavoriteIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewFavoritesService(repo)
	seedUser(repo, "uid-1", "reader@example.com")

	req := model.FavoriteRequest{BookID: "book-1"}

	result, err := svc.AddFavorite(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionAdded, result.Action)
	assert.Equal(t, []string{"book-1"}, result.FavoriteBooks)

	result, err = svc.AddFavorite(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionAlready, result.Action)
	assert.Equal(t, []string{"book-1"}, result.FavoriteBooks)
}

func TestAddFavoriteLazyCreate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewFavoritesService(repo)

	result, err := svc.AddFavorite(context.Background(), "new-uid", model.FavoriteRequest{
		BookID: "book-1",
		Email:  "bookworm@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionAdded, result.Action)
	assert.Equal(t, []string{"book-1"}, result.FavoriteBooks)
}

func TestRemoveFavoriteAbsent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewFavoritesService(repo)
	seedUser(repo, "uid-1", "reader@example.com", "book-1")

	result, err := svc.RemoveFavorite(context.Background(), "uid-1", "book-1")
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionRemoved, result.Action)
	assert.Empty(t, result.FavoriteBooks)

	result, err = svc.RemoveFavorite(context.Background(), "uid-1", "book-1")
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionAbsent, result.Action)
}

func TestRemoveFavoriteUnknownUser(t *testing.T) {
	svc := NewFavoritesService(newFakeUserRepo())

	_, err := svc.RemoveFavorite(context.Background(), "ghost", "book-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Double toggle returns the set to its original state.
func TestToggleFavoriteRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewFavoritesService(repo)
	seedUser(repo, "uid-1", "reader@example.com")

	req := model.FavoriteRequest{BookID: "book-1"}

	result, err := svc.ToggleFavorite(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionAdded, result.Action)

	result, err = svc.ToggleFavorite(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Equal(t, model.FavoriteActionRemoved, result.Action)
	assert.Empty(t, result.FavoriteBooks)
}
