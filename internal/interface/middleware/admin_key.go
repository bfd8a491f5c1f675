package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/readlog/pkg/response"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards admin routes with a shared key. An empty key leaves them open.
func AdminKey(key string) gin.HandlerFunc {
	if key == "" {
		return func(c *gin.Context) { c.Next() }
	}
	want := []byte(key)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(AdminKeyHeader))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			response.Abort(c, http.StatusUnauthorized, "invalid admin key", nil)
			return
		}
		c.Next()
	}
}
