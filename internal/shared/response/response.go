package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the shared JSON envelope: {error, message, data}.
// The favorites group keeps the legacy {success, ...} shape instead;
// see its handler.
type Response struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Error:   false,
		Message: message,
		Data:    data,
	})
}

func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Error responses
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Error:   true,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, message)
}

func Unavailable(c *gin.Context, message string) {
	Fail(c, http.StatusServiceUnavailable, message)
}

func InternalServerError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}
