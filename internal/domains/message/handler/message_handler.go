package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/message/model"
	"booktrade-backend/internal/domains/message/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// MESSAGE HANDLER
// =====================================================

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListContacts lists every user except the caller
// GET /api/v1/messages/get-users/:loggedInUserID
func (h *MessageHandler) ListContacts(c *gin.Context) {
	users, err := h.messageService.ListContacts(c.Request.Context(), c.Param("loggedInUserID"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Users fetched successfully", users)
}

// ListConversation lists messages between two users, oldest first
// GET /api/v1/messages/get-messages/:id/:myid
func (h *MessageHandler) ListConversation(c *gin.Context) {
	messages, err := h.messageService.ListConversation(c.Request.Context(), c.Param("myid"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Messages fetched successfully", messages)
}

// SendMessage sends a text or image message
// POST /api/v1/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully", message)
}
