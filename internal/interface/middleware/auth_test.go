package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performWithRole(role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", func(c *gin.Context) {
		if role != "" {
			c.Set(CtxUserRoleKey, role)
		}
		c.Next()
	}, RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, performWithRole("admin").Code)
	assert.Equal(t, http.StatusForbidden, performWithRole("user").Code, "authenticated non-admins get 403, not 401")
	assert.Equal(t, http.StatusForbidden, performWithRole("").Code)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, 0, KeyByIP(), nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
