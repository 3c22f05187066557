package router

import (
	adminhandler "github.com/ItzArrav/nothingroms-admin/internal/handler/admin"

	"github.com/ItzArrav/nothingroms-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/stats", h.GetServerStats)

	adminGroup.GET("/submissions", h.ListSubmissions)
	adminGroup.POST("/submissions/:id/approve", h.ApproveSubmission)
	adminGroup.POST("/submissions/:id/reject", h.RejectSubmission)

	adminGroup.GET("/roms/all", h.ListAllRoms)
	adminGroup.POST("/roms", h.CreateRom)
	adminGroup.PUT("/roms/:id", h.UpdateRom)
	adminGroup.DELETE("/roms/:id", h.DeleteRom)
	adminGroup.PATCH("/roms/:id/approval", h.SetApproval)
}
