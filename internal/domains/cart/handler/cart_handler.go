package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/cart/model"
	"booktrade-backend/internal/domains/cart/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// CART HANDLER
// =====================================================

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// ListCart lists the cart items of a user, newest first
// GET /api/v1/cart/:userId
func (h *CartHandler) ListCart(c *gin.Context) {
	items, err := h.cartService.ListCart(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Fetched user cart items successfully", items)
}

// AddToCart adds a book to a user's cart
// POST /api/v1/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req model.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book added to cart", item)
}

// DeleteCartItem removes a single cart item
// DELETE /api/v1/cart/:id
func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	if err := h.cartService.DeleteCartItem(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Cart item deleted successfully", nil)
}
