package admin

import (
	"net/http"
	"strconv"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListSubmissions 审核队列，含已审结的历史记录
func (h *Handler) ListSubmissions(c *gin.Context) {
	submissions, err := h.service.ListSubmissionsForAdmin()
	if err != nil {
		writeServiceError(c, err, "获取投稿列表失败")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// ApproveSubmission 通过投稿并生成正式 ROM 记录
func (h *Handler) ApproveSubmission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	submission, rom, err := h.service.ApproveSubmission(id, req.ReviewNote)
	if err != nil {
		writeServiceError(c, err, "审核失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"rom":        rom,
		"message":    "审核通过，ROM 已上架",
	})
}

// RejectSubmission 驳回投稿，审核意见必填
func (h *Handler) RejectSubmission(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	submission, err := h.service.RejectSubmission(id, req.ReviewNote)
	if err != nil {
		writeServiceError(c, err, "审核失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
		"message":    "已驳回",
	})
}

// paramID 解析路径里的 :id；非法时直接写 400 并返回 false。
func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的 ID"})
		return 0, false
	}
	return uint(id), true
}
