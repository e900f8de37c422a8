package service

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/user/model"
	"booktrade-backend/internal/domains/user/repository"
	"booktrade-backend/internal/shared/errors"
	"booktrade-backend/internal/shared/utils"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func NewFavoritesService(userRepo repository.UserRepository) FavoritesService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Upsert(ctx context.Context, req model.UpsertUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	existing, err := s.userRepo.GetByUID(ctx, req.UID)
	if err != nil && !stderrors.Is(err, model.ErrUserNotFound) {
		return nil, errors.Internal("failed to look up user", err)
	}

	// Update path
	if existing != nil {
		existing.Email = req.Email
		existing.DisplayName = req.DisplayName
		if req.Role != "" {
			existing.Role = req.Role
		}
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, errors.Internal("failed to update user", err)
		}
		return existing, nil
	}

	// Create path
	role := req.Role
	if role == "" {
		role = model.DefaultRole
	}
	user := &model.User{
		ID:            uuid.New(),
		UID:           req.UID,
		Email:         req.Email,
		DisplayName:   req.DisplayName,
		Role:          role,
		FavoriteBooks: []string{},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("failed to create user", err)
	}

	return user, nil
}

func (s *userService) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	if uid == "" {
		return nil, errors.Validation("User ID is required")
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if stderrors.Is(err, model.ErrUserNotFound) {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Internal("failed to get user", err)
	}

	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("failed to list users", err)
	}
	return users, nil
}

func (s *userService) Update(ctx context.Context, uid string, req model.UpdateUserRequest) (*model.User, error) {
	if uid == "" {
		return nil, errors.Validation("User ID is required")
	}
	if !req.HasChanges() {
		return nil, errors.Validation("No valid fields to update")
	}
	if err := req.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		if stderrors.Is(err, model.ErrUserNotFound) {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Internal("failed to get user", err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("failed to update user", err)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, uid string) error {
	if uid == "" {
		return errors.Validation("User ID is required")
	}

	if err := s.userRepo.DeleteByUID(ctx, uid); err != nil {
		if stderrors.Is(err, model.ErrUserNotFound) {
			return errors.NotFound("User not found")
		}
		return errors.Internal("failed to delete user", err)
	}

	return nil
}

// =====================================================
// FAVORITES
// =====================================================

func (s *userService) GetFavorites(ctx context.Context, uid, email string) ([]string, error) {
	if uid == "" {
		return nil, errors.Validation("User ID is required")
	}

	user, err := s.userRepo.GetByUID(ctx, uid)
	if err == nil {
		return user.FavoriteBooks, nil
	}
	if !stderrors.Is(err, model.ErrUserNotFound) {
		return nil, errors.Internal("failed to get user", err)
	}

	// First interaction: create the user lazily.
	created, err := s.createLazyUser(ctx, uid, email, nil)
	if err != nil {
		return nil, err
	}
	return created.FavoriteBooks, nil
}

func (s *userService) AddFavorite(ctx context.Context, uid string, req model.FavoriteRequest) (*model.FavoritesResult, error) {
	if uid == "" {
		return nil, errors.Validation("User ID and Book ID are required")
	}
	if err := req.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	favorites, changed, err := s.userRepo.AddFavorite(ctx, uid, req.BookID)
	if err == nil {
		action := model.FavoriteActionAdded
		if !changed {
			action = model.FavoriteActionAlready
		}
		return &model.FavoritesResult{Action: action, FavoriteBooks: favorites}, nil
	}
	if !stderrors.Is(err, model.ErrUserNotFound) {
		return nil, errors.Internal("failed to add favorite", err)
	}

	created, lazyErr := s.createLazyUser(ctx, uid, req.Email, []string{req.BookID})
	if lazyErr != nil {
		return nil, lazyErr
	}
	return &model.FavoritesResult{
		Action:        model.FavoriteActionAdded,
		FavoriteBooks: created.FavoriteBooks,
	}, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, uid, bookID string) (*model.FavoritesResult, error) {
	if uid == "" || bookID == "" {
		return nil, errors.Validation("User ID and Book ID are required")
	}

	favorites, changed, err := s.userRepo.RemoveFavorite(ctx, uid, bookID)
	if err != nil {
		if stderrors.Is(err, model.ErrUserNotFound) {
			return nil, errors.NotFound("User not found")
		}
		return nil, errors.Internal("failed to remove favorite", err)
	}

	action := model.FavoriteActionRemoved
	if !changed {
		action = model.FavoriteActionAbsent
	}
	return &model.FavoritesResult{Action: action, FavoriteBooks: favorites}, nil
}

func (s *userService) ToggleFavorite(ctx context.Context, uid string, req model.FavoriteRequest) (*model.FavoritesResult, error) {
	if uid == "" {
		return nil, errors.Validation("User ID and Book ID are required")
	}
	if err := req.Validate(); err != nil {
		return nil, errors.Validation(err.Error())
	}

	favorites, nowFavorite, err := s.userRepo.ToggleFavorite(ctx, uid, req.BookID)
	if err == nil {
		action := model.FavoriteActionRemoved
		if nowFavorite {
			action = model.FavoriteActionAdded
		}
		return &model.FavoritesResult{Action: action, FavoriteBooks: favorites}, nil
	}
	if !stderrors.Is(err, model.ErrUserNotFound) {
		return nil, errors.Internal("failed to toggle favorite", err)
	}

	created, lazyErr := s.createLazyUser(ctx, uid, req.Email, []string{req.BookID})
	if lazyErr != nil {
		return nil, lazyErr
	}
	return &model.FavoritesResult{
		Action:        model.FavoriteActionAdded,
		FavoriteBooks: created.FavoriteBooks,
	}, nil
}

// createLazyUser registers a user on first favorites interaction. The
// display name falls back to the email local part.
func (s *userService) createLazyUser(ctx context.Context, uid, email string, favorites []string) (*model.User, error) {
	if email == "" {
		return nil, errors.Validation(model.ErrEmailRequired.Error())
	}
	if favorites == nil {
		favorites = []string{}
	}

	user := &model.User{
		ID:            uuid.New(),
		UID:           uid,
		Email:         email,
		DisplayName:   utils.DisplayNameFromEmail(email),
		Role:          model.DefaultRole,
		FavoriteBooks: favorites,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("failed to create user", err)
	}

	return user, nil
}
