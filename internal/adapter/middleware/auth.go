package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth は静的な共有シークレットによる Bearer トークン認証ミドルウェア。
// ダッシュボードとワーカーが同じシークレットを共有する。
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			requestID, _ := c.Get("request_id")
			reqID, _ := requestID.(string)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":       "OPS_DASH_FORBIDDEN",
					"message":    "認証トークンが不正です",
					"request_id": reqID,
					"details":    []string{},
				},
			})
			return
		}
		c.Next()
	}
}
