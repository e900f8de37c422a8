package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"booktrade-backend/internal/shared/errors"
)

// FromError maps a service failure onto the envelope using the shared
// taxonomy. Unexpected errors are logged with the request id and turned
// into an opaque 500; stack details never leave the process.
func FromError(c *gin.Context, err error) {
	var de *errors.DomainError
	if stderrors.As(err, &de) {
		status := de.Status
		if status == 0 {
			status = defaultStatus(de.Kind)
		}

		if de.Err != nil {
			log.Error().
				Str("request_id", c.GetString("request_id")).
				Err(de.Err).
				Msg(de.Message)
		}

		Fail(c, status, de.Message)
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Err(err).
		Msg("Unhandled service error")

	InternalServerError(c, "Internal Server Error")
}

func defaultStatus(kind error) int {
	switch kind {
	case errors.ErrValidation:
		return http.StatusBadRequest
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrConflict:
		return http.StatusConflict
	case errors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
