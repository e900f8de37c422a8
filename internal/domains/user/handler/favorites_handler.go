package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/user/model"
	"booktrade-backend/internal/domains/user/service"
	"booktrade-backend/internal/shared/errors"
)

// =====================================================
// FAVORITES HANDLER
// =====================================================
// This group keeps the legacy {success, ...} envelope instead of the
// shared {error, message, data} one; clients of the original API depend
// on the shape.

type FavoritesHandler struct {
	favService service.FavoritesService
}

func NewFavoritesHandler(favService service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favService: favService}
}

// GetFavorites gets a user's favorite book ids, creating the user lazily
// GET /api/v1/favorites/:uid?email=...
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.favService.GetFavorites(c.Request.Context(), c.Param("uid"), c.Query("email"))
	if err != nil {
		failFavorites(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"favoriteBooks": favorites,
	})
}

// AddFavorite adds a book to the favorite set (no-op if already present)
// POST /api/v1/favorites/:uid
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	var req model.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	result, err := h.favService.AddFavorite(c.Request.Context(), c.Param("uid"), req)
	if err != nil {
		failFavorites(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       favoriteMessage(result.Action),
		"action":        result.Action,
		"favoriteBooks": result.FavoriteBooks,
	})
}

// RemoveFavorite removes a book from the favorite set (no-op if absent)
// DELETE /api/v1/favorites/:uid/:bookId
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	result, err := h.favService.RemoveFavorite(c.Request.Context(), c.Param("uid"), c.Param("bookId"))
	if err != nil {
		failFavorites(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       favoriteMessage(result.Action),
		"action":        result.Action,
		"favoriteBooks": result.FavoriteBooks,
	})
}

// ToggleFavorite flips the membership of a book in the favorite set
// PUT /api/v1/favorites/:uid/toggle
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	var req model.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	result, err := h.favService.ToggleFavorite(c.Request.Context(), c.Param("uid"), req)
	if err != nil {
		failFavorites(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       favoriteMessage(result.Action),
		"action":        result.Action,
		"favoriteBooks": result.FavoriteBooks,
	})
}

func favoriteMessage(action string) string {
	switch action {
	case model.FavoriteActionAdded:
		return "Book added to favorites"
	case model.FavoriteActionRemoved:
		return "Book removed from favorites"
	case model.FavoriteActionAlready:
		return "Book already in favorites"
	case model.FavoriteActionAbsent:
		return "Book not in favorites"
	default:
		return ""
	}
}

func failFavorites(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var de *errors.DomainError
	if stderrors.As(err, &de) {
		message = de.Message
		switch {
		case stderrors.Is(err, errors.ErrValidation):
			status = http.StatusBadRequest
		case stderrors.Is(err, errors.ErrNotFound):
			status = http.StatusNotFound
		case stderrors.Is(err, errors.ErrUnavailable):
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}
