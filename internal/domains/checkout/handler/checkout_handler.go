package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/checkout/model"
	"booktrade-backend/internal/domains/checkout/service"
	apperrors "booktrade-backend/internal/shared/errors"
)

// =====================================================
// CHECKOUT HANDLER
// =====================================================

// The checkout group keeps the original API's bare `{url}` / `{error}`
// shapes instead of the shared envelope.

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateCheckoutSession creates a hosted checkout session for the cart
// POST /api/v1/stripe/create-checkout-session
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req model.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No products provided"})
		return
	}

	session, err := h.checkoutService.CreateCheckoutSession(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to create checkout session"

		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Kind != apperrors.ErrInternal {
			status = http.StatusBadRequest
			message = domainErr.Message
		}

		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL})
}
