package admin

import (
	"net/http"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListAllRoms 后台目录全量视图，带审核计数
func (h *Handler) ListAllRoms(c *gin.Context) {
	list, err := h.service.ListAllRomsForAdmin()
	if err != nil {
		writeServiceError(c, err, "获取 ROM 列表失败")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateRom 管理员直接建档上架，不走投稿流程
func (h *Handler) CreateRom(c *gin.Context) {
	var req dto.RomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	rom, err := h.service.CreateRomForAdmin(req)
	if err != nil {
		writeServiceError(c, err, "创建 ROM 失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rom":     rom,
		"message": "创建成功",
	})
}

func (h *Handler) UpdateRom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.RomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	rom, err := h.service.UpdateRomForAdmin(id, req)
	if err != nil {
		writeServiceError(c, err, "更新 ROM 失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rom":     rom,
		"message": "更新成功",
	})
}

func (h *Handler) DeleteRom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRomForAdmin(id); err != nil {
		writeServiceError(c, err, "删除 ROM 失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// SetApproval 上架/下架开关
func (h *Handler) SetApproval(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	rom, err := h.service.SetApproval(id, *req.IsApproved)
	if err != nil {
		writeServiceError(c, err, "更新上架状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rom":     rom,
		"message": "上架状态已更新",
	})
}
