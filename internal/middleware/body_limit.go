package middleware

import (
	"net/http"
	"strings"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通 JSON 请求体大小
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 上传接口单独放宽，这里简单通过路径判断
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/upload") {
			c.Next()
			return
		}

		maxSizeMB := config.Get().Limit.MaxBodySizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}

		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制 ROM 上传接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := int64(consts.MaxRomUploadSize)

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "文件大小不能超过 2GB"})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
