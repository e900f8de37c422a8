package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker is the slice of the database wrapper the guard needs.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StoreGuard blocks data routes with 503 while the entity store is
// unreachable. Only mounted when the app boots under the "degraded"
// policy; under "fatal" an unreachable store aborts startup instead.
func StoreGuard(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error":   true,
				"message": "Entity store unreachable, service degraded",
			})
			return
		}

		c.Next()
	}
}
