package router

import (
	"github.com/ItzArrav/nothingroms-admin/internal/handler"
	"github.com/ItzArrav/nothingroms-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerDeveloperRoutes(api *gin.RouterGroup, h *handler.Handler) {
	devGroup := api.Group("/developer")
	devGroup.Use(middleware.JWTAuth())

	devGroup.GET("/roms", h.ListOwnRoms)
	devGroup.POST("/roms/upload", middleware.UploadBodyLimitMiddleware(), h.UploadRom)
	devGroup.PUT("/roms/:id", h.UpdateOwnRom)
	devGroup.DELETE("/roms/:id", h.DeleteOwnRom)

	devGroup.GET("/submissions", h.ListMySubmissions)
}
