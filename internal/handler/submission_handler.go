package handler

import (
	"net/http"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

// SubmitRom 公开投稿入口。带有效 Token 时投稿挂到对应开发者账号，
// 匿名投稿则必须留下署名和联系方式。
func (h *Handler) SubmitRom(c *gin.Context) {
	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	var developerID *uint
	if uid, ok := currentDeveloperID(c); ok {
		developerID = &uid
	}

	submission, err := h.service.SubmitRom(req, developerID)
	if err != nil {
		WriteServiceError(c, err, "投稿失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"message":    "投稿成功，等待审核",
	})
}
