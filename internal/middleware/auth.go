package middleware

import (
	"net/http"
	"strings"

	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth 尝试解析 Token 但不强制；公开投稿接口用它把登录投稿挂到账号上。
func OptionalJWTAuth() gin.HandlerFunc {
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
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("role")
		role, ok := value.(string)
		if !exist || !ok || role != string(consts.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限才能访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}
