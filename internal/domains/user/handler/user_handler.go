package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktrade-backend/internal/domains/user/model"
	"booktrade-backend/internal/domains/user/service"
	"booktrade-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lists all users
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Users fetched successfully", users)
}

// GetUser gets a user by external uid
// GET /api/v1/users/:uid
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "User fetched successfully", user)
}

// UpsertUser creates or updates the user matching the payload uid
// POST /api/v1/users
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req model.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Upsert(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User saved successfully", user)
}

// UpdateUser updates profile fields of an existing user
// PUT /api/v1/users/:uid
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("uid"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// DeleteUser deletes a user by external uid
// DELETE /api/v1/users/:uid
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("uid")); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
