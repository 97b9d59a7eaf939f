package middleware

import (
	"net/http"
	"strings"

	pkgctx "campuswall/pkg/context"
	"campuswall/pkg/jwt"
	"campuswall/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 必须携带有效 access token
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			return
		}
		c.Set(pkgctx.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 带了有效 token 就注入 user_id，没带也放行。
// 列表/详情这类公开读接口用它来拿 liked 状态
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
			c.Set(pkgctx.CtxUserID, claims.UserID)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return claims, true
}
