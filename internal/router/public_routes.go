package router

import (
	"github.com/ItzArrav/nothingroms-admin/internal/handler"
	"github.com/ItzArrav/nothingroms-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/roms", h.ListRoms)
	api.GET("/roms/featured", h.FeaturedRoms)
	api.GET("/roms/search/:query", h.SearchRoms)
	api.POST("/roms/filter", h.FilterRoms)
	api.GET("/roms/:id", h.GetRom)
	api.POST("/roms/:id/download", h.RecordDownload)

	// 公开投稿：匿名可投，带 Token 时挂到账号名下
	api.POST("/submissions", middleware.OptionalJWTAuth(), h.SubmitRom)

	// ROM 压缩包下载（带路径穿越防护）
	api.GET("/download/:filename", h.DownloadFile)
}
