package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/server/respond"
	"resume-vault/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a generic 500. Outside
// production the stack trace is included in the body as a diagnostic
// affordance; consumers must not depend on it.
func Recovery(includeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      stack,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				if includeStack {
					respond.ErrorWithStack(c, http.StatusInternalServerError, "Server Error", stack)
				} else {
					respond.Error(c, http.StatusInternalServerError, "Server Error")
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
