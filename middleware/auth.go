package middleware

import (
	"net/http"
	"strings"

	"Foodgram/pkg/context"
	"Foodgram/pkg/jwt"
	"Foodgram/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 必须携带有效令牌，解析出的用户ID放进上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 公开接口用：带了有效令牌就解析身份，没带照常匿名访问
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if claims, err := jwt.ParseToken(secret, "access", parts[1]); err == nil {
			c.Set(context.CtxUserID, claims.UserID)
		}
		c.Next()
	}
}
