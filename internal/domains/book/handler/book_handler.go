package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/book/model"
	"booktrade-backend/internal/domains/book/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// BOOK HANDLER
// =====================================================

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// ListBooks lists every listed book, newest first
// GET /api/v1/books
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Books fetched successfully", books)
}

// GetBook gets a book by id
// GET /api/v1/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Book fetched successfully", book)
}

// ListUserBooks lists the books owned by a user
// GET /api/v1/books/get-user-books/:uid
func (h *BookHandler) ListUserBooks(c *gin.Context) {
	books, err := h.bookService.ListBooksByOwner(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "User books fetched successfully", books)
}

// SearchByLocation lists books within a radius of a coordinate
// GET /api/v1/books/location?latitude=..&longitude=..&radius=..
func (h *BookHandler) SearchByLocation(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		response.BadRequest(c, "latitude and longitude are required")
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		response.BadRequest(c, "latitude and longitude are required")
		return
	}

	query := &model.LocationQuery{Latitude: latitude, Longitude: longitude}
	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(c, "radius must be a number")
			return
		}
		query.RadiusKm = radius
	}

	books, err := h.bookService.SearchByLocation(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Nearby books fetched successfully", books)
}

// CreateBook lists a new book
// POST /api/v1/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", book)
}

// UpdateBook updates fields of an existing book
// PUT /api/v1/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Book updated successfully", book)
}

// DeleteBook removes a book listing
// DELETE /api/v1/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.bookService.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Book deleted successfully", nil)
}
