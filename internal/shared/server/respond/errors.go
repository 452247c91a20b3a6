package respond

import (
	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/telemetry"
)

// ErrorBody is the standardized error object. The msg field is what the
// existing UI client reads, so its name is part of the API contract.
type ErrorBody struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack,omitempty"`
}

// Error logs and sends a standardized error response, aborting the request.
func Error(c *gin.Context, status int, msg string) {
	fields := map[string]any{
		"status":     status,
		"msg":        msg,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{Msg: msg})
}

// ErrorWithStack behaves like Error but also ships the stack trace in the
// body. Callers must gate this on non-production deployments.
func ErrorWithStack(c *gin.Context, status int, msg, stack string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"msg":        msg,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{Msg: msg, Stack: stack})
}
