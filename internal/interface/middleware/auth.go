package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/furnistore/backend/pkg/helpers"
	"github.com/furnistore/backend/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// bearerToken pulls the token from the Authorization header, falling back to
// the access_token cookie for browser clients.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie("access_token"); err == nil {
		return token
	}
	return ""
}

// Auth validates the bearer token and ensures an active session exists in
// Redis. Pure filter: it attaches identity to the context and never mutates
// state. Sets userID and userRole on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set(CtxUserRoleKey, data["role"])
		c.Next()
	}
}

// RequireAdmin rejects identities whose role is not admin. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != "admin" {
			response.AbortError(c, http.StatusForbidden, "admin access required", nil)
			return
		}
		c.Next()
	}
}
