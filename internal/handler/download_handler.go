package handler

import (
	"github.com/gin-gonic/gin"
)

// DownloadFile 按文件名下载托管的 ROM 压缩包。
// 路径解析带穿越防护，解析失败一律按 404 处理。
func (h *Handler) DownloadFile(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.service.ResolveDownloadFile(filename)
	if err != nil {
		WriteServiceError(c, err, "文件不存在")
		return
	}

	c.FileAttachment(path, filename)
}
