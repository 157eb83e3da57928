package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Payload carries the endpoint-specific keys merged into the envelope.
type Payload map[string]any

// Success writes `{success:true, message, request_id, ...payload}`.
func Success(c *gin.Context, status int, message string, payload Payload) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{
		"success":    true,
		"message":    message,
		"request_id": c.GetString("request_id"),
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes `{success:false, message, request_id, error?}` and leaves the
// handler chain to the caller (use Abort in middleware).
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := gin.H{
		"success":    false,
		"message":    message,
		"request_id": c.GetString("request_id"),
	}
	if details != nil {
		body["error"] = details
	}
	c.JSON(status, body)
}

// AbortError writes the error envelope and stops the handler chain.
func AbortError(c *gin.Context, status int, message string, details any) {
	Error(c, status, message, details)
	c.Abort()
}
