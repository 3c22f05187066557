package handler

import (
	"net/http"
	"strconv"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

// ListRoms 公开目录，只含已上架的 ROM
func (h *Handler) ListRoms(c *gin.Context) {
	roms, err := h.service.ListApprovedRoms()
	if err != nil {
		WriteServiceError(c, err, "获取 ROM 列表失败")
		return
	}
	c.JSON(http.StatusOK, roms)
}

// FeaturedRoms 首页精选位，按下载量取前几名
func (h *Handler) FeaturedRoms(c *gin.Context) {
	roms, err := h.service.FeaturedRoms()
	if err != nil {
		WriteServiceError(c, err, "获取精选 ROM 失败")
		return
	}
	c.JSON(http.StatusOK, roms)
}

func (h *Handler) GetRom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rom, err := h.service.GetRom(id)
	if err != nil {
		WriteServiceError(c, err, "获取 ROM 失败")
		return
	}
	c.JSON(http.StatusOK, rom)
}

func (h *Handler) SearchRoms(c *gin.Context) {
	query := c.Param("query")
	roms, err := h.service.SearchRoms(query)
	if err != nil {
		WriteServiceError(c, err, "搜索失败")
		return
	}
	c.JSON(http.StatusOK, roms)
}

func (h *Handler) FilterRoms(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}
	roms, err := h.service.FilterRoms(req)
	if err != nil {
		WriteServiceError(c, err, "筛选失败")
		return
	}
	c.JSON(http.StatusOK, roms)
}

// RecordDownload 记录一次下载并返回实际下载地址
func (h *Handler) RecordDownload(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	downloadURL, err := h.service.RecordDownload(id)
	if err != nil {
		WriteServiceError(c, err, "下载记录失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
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
