package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktrade-backend/internal/domains/review/model"
	usermodel "booktrade-backend/internal/domains/user/model"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// FAKES
// =====================================================

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[uuid.UUID]*model.Review{}}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *model.Review) error {
	for _, existing := range r.reviews {
		if existing.UserID == review.UserID && existing.BookID == review.BookID {
			return model.ErrDuplicateReview
		}
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) GetDetail(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	return &model.ReviewDetail{
		ID:      review.ID,
		Rating:  review.Rating,
		Title:   review.Title,
		Content: review.Content,
	}, nil
}

func (r *fakeReviewRepo) ListByBook(ctx context.Context, bookID uuid.UUID) ([]*model.ReviewDetail, error) {
	details := []*model.ReviewDetail{}
	for _, review := range r.reviews {
		if review.BookID == bookID {
			detail, _ := r.GetDetail(ctx, review.ID)
			details = append(details, detail)
		}
	}
	return details, nil
}

func (r *fakeReviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.ReviewDetail, error) {
	details := []*model.ReviewDetail{}
	for _, review := range r.reviews {
		if review.UserID == userID {
			detail, _ := r.GetDetail(ctx, review.ID)
			details = append(details, detail)
		}
	}
	return details, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *model.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return model.ErrReviewNotFound
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

type fakeUserRepo struct {
	ids map[uuid.UUID]bool
}

func (r *fakeUserRepo) Create(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (r *fakeUserRepo) List(ctx context.Context) ([]*usermodel.User, error) { return nil, nil }
func (r *fakeUserRepo) ListExcluding(ctx context.Context, id uuid.UUID) ([]*usermodel.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *usermodel.User) error { return nil }
func (r *fakeUserRepo) DeleteByUID(ctx context.Context, uid string) error      { return nil }
func (r *fakeUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ids[id], nil
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

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

// =====================================================
// TESTS
// =====================================================

func TestCreateReview(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	userID := uuid.New()
	svc := NewReviewService(reviewRepo, &fakeUserRepo{ids: map[uuid.UUID]bool{userID: true}})

	detail, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		UserID:  userID.String(),
		BookID:  uuid.New().String(),
		Rating:  intPtr(4),
		Title:   "Solid read",
		Content: "Enjoyed it.",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, detail.Rating)
	assert.Len(t, reviewRepo.reviews, 1)
}

func TestCreateReviewDuplicate(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	userID := uuid.New()
	svc := NewReviewService(reviewRepo, &fakeUserRepo{ids: map[uuid.UUID]bool{userID: true}})

	req := &model.CreateReviewRequest{
		UserID:  userID.String(),
		BookID:  uuid.New().String(),
		Rating:  intPtr(4),
		Title:   "Solid read",
		Content: "Enjoyed it.",
	}

	_, err := svc.CreateReview(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "You have already reviewed this book", apperrors.Message(err))
}

func TestCreateReviewRatingBounds(t *testing.T) {
	userID := uuid.New()
	svc := NewReviewService(newFakeReviewRepo(), &fakeUserRepo{ids: map[uuid.UUID]bool{userID: true}})

	for _, rating := range []int{0, 6} {
		_, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
			UserID:  userID.String(),
			BookID:  uuid.New().String(),
			Rating:  intPtr(rating),
			Title:   "Out of bounds",
			Content: "Rating outside 1..5",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestCreateReviewUnknownUser(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), &fakeUserRepo{ids: map[uuid.UUID]bool{}})

	_, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		UserID:  uuid.New().String(),
		BookID:  uuid.New().String(),
		Rating:  intPtr(3),
		Title:   "Ghost",
		Content: "No such user.",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateReview(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	userID := uuid.New()
	svc := NewReviewService(reviewRepo, &fakeUserRepo{ids: map[uuid.UUID]bool{userID: true}})

	detail, err := svc.CreateReview(context.Background(), &model.CreateReviewRequest{
		UserID:  userID.String(),
		BookID:  uuid.New().String(),
		Rating:  intPtr(2),
		Title:   "Meh",
		Content: "Did not land.",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateReview(context.Background(), detail.ID.String(), &model.UpdateReviewRequest{
		Rating: intPtr(5),
		Title:  strPtr("Grew on me"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Grew on me", updated.Title)
	assert.Equal(t, "Did not land.", updated.Content)
}

func TestUpdateReviewNoFields(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, &fakeUserRepo{})

	review := &model.Review{ID: uuid.New(), UserID: uuid.New(), BookID: uuid.New(), Rating: 3}
	reviewRepo.reviews[review.ID] = review

	_, err := svc.UpdateReview(context.Background(), review.ID.String(), &model.UpdateReviewRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), &fakeUserRepo{})

	_, err := svc.UpdateReview(context.Background(), uuid.New().String(), &model.UpdateReviewRequest{
		Rating: intPtr(4),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, &fakeUserRepo{})

	review := &model.Review{ID: uuid.New(), UserID: uuid.New(), BookID: uuid.New(), Rating: 3}
	reviewRepo.reviews[review.ID] = review

	require.NoError(t, svc.DeleteReview(context.Background(), review.ID.String()))

	err := svc.DeleteReview(context.Background(), review.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListUserReviewsUnknownUser(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), &fakeUserRepo{ids: map[uuid.UUID]bool{}})

	_, err := svc.ListUserReviews(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
