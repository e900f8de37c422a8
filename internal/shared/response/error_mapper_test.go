package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "booktrade-backend/internal/shared/errors"
)

func record(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	FromError(c, err)
	return w
}

func TestFromErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.Validation("bad input"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("Book not found"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("Book already in cart"), http.StatusConflict},
		{"business rule is 400", apperrors.BusinessRule("Trade request already exists"), http.StatusBadRequest},
		{"unavailable", apperrors.Unavailable("store down", errors.New("dial refused")), http.StatusServiceUnavailable},
		{"internal", apperrors.Internal("boom", errors.New("cause")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.err)
			assert.Equal(t, tt.status, w.Code)

			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.True(t, body.Error)
		})
	}
}

// Unexpected errors never leak their message to the client.
func TestFromErrorOpaqueInternal(t *testing.T) {
	w := record(errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
}
