package router

import (
	"github.com/ItzArrav/nothingroms-admin/internal/handler"
	"github.com/ItzArrav/nothingroms-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	authGroup := api.Group("/auth")

	authGroup.POST("/register", authLimiter, h.Register)
	authGroup.POST("/login", authLimiter, h.Login)

	authGroup.GET("/profile", middleware.JWTAuth(), h.GetProfile)
	authGroup.PUT("/profile", middleware.JWTAuth(), h.UpdateProfile)
}
