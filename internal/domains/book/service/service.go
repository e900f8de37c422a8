package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"booktrade-backend/internal/domains/book/model"
	"booktrade-backend/internal/domains/book/repository"
	apperrors "booktrade-backend/internal/shared/errors"
	"booktrade-backend/pkg/cache"
	"booktrade-backend/pkg/logger"
)

// =====================================================
// BOOK SERVICE IMPLEMENTATION
// =====================================================

const (
	bookListCacheKey  = "books:all"
	bookCacheKeyFmt   = "books:%s"
	bookCachePattern  = "books:*"
	bookCacheDuration = 5 * time.Minute
)

type bookService struct {
	repo  repository.BookRepository
	cache cache.Cache
}

func NewBookService(repo repository.BookRepository, cache cache.Cache) BookService {
	return &bookService{
		repo:  repo,
		cache: cache,
	}
}

func (s *bookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	book := req.ToBook()
	book.ID = uuid.New()
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, apperrors.Internal("failed to create book", err)
	}

	s.invalidateBookCache(ctx)
	return book, nil
}

func (s *bookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("invalid book id")
	}

	cacheKey := fmt.Sprintf(bookCacheKeyFmt, id)
	var cached model.Book
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		if err == model.ErrBookNotFound {
			return nil, apperrors.NotFound("Book not found")
		}
		return nil, apperrors.Internal("failed to get book", err)
	}

	if err := s.cache.Set(ctx, cacheKey, book, bookCacheDuration); err != nil {
		logger.Warn("failed to cache book", err)
	}

	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]*model.Book, error) {
	var cached []*model.Book
	if found, err := s.cache.Get(ctx, bookListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list books", err)
	}

	if err := s.cache.Set(ctx, bookListCacheKey, books, bookCacheDuration); err != nil {
		logger.Warn("failed to cache book list", err)
	}

	return books, nil
}

func (s *bookService) ListBooksByOwner(ctx context.Context, ownerUID string) ([]*model.Book, error) {
	if ownerUID == "" {
		return nil, apperrors.Validation("uid is required")
	}

	books, err := s.repo.ListByOwner(ctx, ownerUID)
	if err != nil {
		return nil, apperrors.Internal("failed to list books by owner", err)
	}

	return books, nil
}

func (s *bookService) SearchByLocation(ctx context.Context, query *model.LocationQuery) ([]*model.NearbyBook, error) {
	if query.RadiusKm == 0 {
		query.RadiusKm = model.DefaultSearchRadiusKm
	}
	if err := query.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	books, err := s.repo.ListWithCoordinates(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to search books by location", err)
	}

	nearby := []*model.NearbyBook{}
	for _, book := range books {
		distance := model.HaversineKm(query.Latitude, query.Longitude, *book.Latitude, *book.Longitude)
		if model.WithinRadius(distance, query.RadiusKm) {
			nearby = append(nearby, &model.NearbyBook{Book: book, DistanceKm: distance})
		}
	}

	return nearby, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("invalid book id")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if !req.HasChanges() {
		return nil, apperrors.Validation("no fields to update")
	}

	book, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		if err == model.ErrBookNotFound {
			return nil, apperrors.NotFound("Book not found")
		}
		return nil, apperrors.Internal("failed to get book", err)
	}

	req.Apply(book)

	if err := s.repo.Update(ctx, book); err != nil {
		if err == model.ErrBookNotFound {
			return nil, apperrors.NotFound("Book not found")
		}
		return nil, apperrors.Internal("failed to update book", err)
	}

	s.invalidateBookCache(ctx)
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.Validation("invalid book id")
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		if err == model.ErrBookNotFound {
			return apperrors.NotFound("Book not found")
		}
		return apperrors.Internal("failed to delete book", err)
	}

	s.invalidateBookCache(ctx)
	return nil
}

func (s *bookService) invalidateBookCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, bookCachePattern); err != nil {
		logger.Warn("failed to invalidate book cache", err)
	}
}
