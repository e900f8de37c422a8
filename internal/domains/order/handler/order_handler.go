package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/order/model"
	"booktrade-backend/internal/domains/order/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// ORDER HANDLER
// =====================================================

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders lists the orders of a user, newest first
// GET /api/v1/orders/:userId
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if len(orders) == 0 {
		response.OK(c, "No orders found for this user", orders)
		return
	}

	response.OK(c, "Fetched user orders successfully", orders)
}

// CreateOrders creates orders from cart items, best effort
// POST /api/v1/orders
func (h *OrderHandler) CreateOrders(c *gin.Context) {
	var req model.CreateOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.CreateOrders(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Orders created successfully", result)
}
