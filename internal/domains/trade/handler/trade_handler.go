package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/trade/model"
	"booktrade-backend/internal/domains/trade/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// TRADE HANDLER
// =====================================================

type TradeHandler struct {
	tradeService service.TradeService
}

func NewTradeHandler(tradeService service.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// CreateTrade proposes a book swap between two users
// POST /api/v1/trades
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	var req model.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trade, err := h.tradeService.CreateTrade(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Trade created successfully", trade)
}

// AcceptTrade accepts a trade and materializes its two orders
// PUT /api/v1/trades/accept-trade/:id
func (h *TradeHandler) AcceptTrade(c *gin.Context) {
	result, err := h.tradeService.AcceptTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, "Trade accepted successfully", result)
}

// RejectTrade rejects a trade; no orders are created
// PUT /api/v1/trades/reject-trade/:id
func (h *TradeHandler) RejectTrade(c *gin.Context) {
	trade, err := h.tradeService.RejectTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, "Trade rejected successfully", trade)
}

// ListOutgoing lists pending trades initiated by the user
// GET /api/v1/trades/requested-trades/:userId
func (h *TradeHandler) ListOutgoing(c *gin.Context) {
	trades, err := h.tradeService.ListOutgoing(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Requested trades fetched successfully", trades)
}

// ListIncoming lists pending trades sent to the user
// GET /api/v1/trades/trade-requests/:userId
func (h *TradeHandler) ListIncoming(c *gin.Context) {
	trades, err := h.tradeService.ListIncoming(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Trade requests received successfully", trades)
}

// ListAccepted lists settled trades the user took part in
// GET /api/v1/trades/accepted-trades/:userId
func (h *TradeHandler) ListAccepted(c *gin.Context) {
	trades, err := h.tradeService.ListAccepted(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Accepted trades fetched successfully", trades)
}

// ListRejected lists rejected trades the user took part in
// GET /api/v1/trades/rejected-trades/:userId
func (h *TradeHandler) ListRejected(c *gin.Context) {
	trades, err := h.tradeService.ListRejected(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Rejected trades fetched successfully", trades)
}
