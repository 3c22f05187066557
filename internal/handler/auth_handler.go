package handler

import (
	"net/http"

	"github.com/ItzArrav/nothingroms-admin/internal/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	token, developer, err := h.service.RegisterDeveloper(req)
	if err != nil {
		WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"developer": dto.NewDeveloperProfile(developer),
		"message":   "注册成功",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	token, developer, err := h.service.LoginDeveloper(req)
	if err != nil {
		WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"developer": dto.NewDeveloperProfile(developer),
		"message":   "登录成功",
	})
}

// GetProfile 获取当前登录账号信息
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}

	developer, err := h.service.GetProfile(uid)
	if err != nil {
		WriteServiceError(c, err, "获取账号信息失败")
		return
	}

	c.JSON(http.StatusOK, dto.NewDeveloperProfile(developer))
}

// UpdateProfile 更新当前登录账号的资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := currentDeveloperID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取账号ID失败"})
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	developer, err := h.service.UpdateProfile(uid, req)
	if err != nil {
		WriteServiceError(c, err, "更新资料失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"developer": dto.NewDeveloperProfile(developer),
		"message":   "资料更新成功",
	})
}

// currentDeveloperID 从上下文取出认证中间件写入的账号ID。
func currentDeveloperID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	uid, ok := value.(uint)
	return uid, ok
}
