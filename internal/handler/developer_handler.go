package handler

import (
	"net/http"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListOwnRoms 开发者名下的全部 ROM（含未上架）
func (h *Handler) ListOwnRoms(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}

	roms, err := h.service.ListOwnRoms(uid)
	if err != nil {
		WriteServiceError(c, err, "获取 ROM 列表失败")
		return
	}
	c.JSON(http.StatusOK, roms)
}

// UploadRom 开发者上传 ROM 压缩包，multipart 表单：file + 元数据字段
func (h *Handler) UploadRom(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 ROM 文件"})
		return
	}

	var req dto.RomUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	rom, err := h.service.ProcessRomUpload(file, req, uid)
	if err != nil {
		WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rom":     rom,
		"message": "上传成功，等待审核",
	})
}

// UpdateOwnRom 开发者更新自己的 ROM 信息
func (h *Handler) UpdateOwnRom(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.RomUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	rom, err := h.service.UpdateOwnRom(uid, id, req)
	if err != nil {
		WriteServiceError(c, err, "更新 ROM 失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rom":     rom,
		"message": "更新成功",
	})
}

// DeleteOwnRom 开发者删除自己的 ROM
func (h *Handler) DeleteOwnRom(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteOwnRom(uid, id); err != nil {
		WriteServiceError(c, err, "删除 ROM 失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ListMySubmissions 开发者查看自己的投稿记录
func (h *Handler) ListMySubmissions(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}

	submissions, err := h.service.ListMySubmissions(uid)
	if err != nil {
		WriteServiceError(c, err, "获取投稿记录失败")
		return
	}
	c.JSON(http.StatusOK, submissions)
}
