package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS は全レスポンスに許可的なクロスオリジンヘッダーを付与するミドルウェア。
// ダッシュボードのフロントエンドは別オリジンで配信される。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
