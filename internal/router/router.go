package router

import (
	"net/http"

	adminhandler "github.com/ItzArrav/nothingroms-admin/internal/handler/admin"

	"github.com/ItzArrav/nothingroms-admin/internal/handler"
	"github.com/ItzArrav/nothingroms-admin/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	handler      *handler.Handler
	adminHandler *adminhandler.Handler
}

func NewRouter(h *handler.Handler, ah *adminhandler.Handler) *Router {
	return &Router{
		handler:      h,
		adminHandler: ah,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 前端单页应用跨域访问，需放行 Authorization 头
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：多个域路由复用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimitMiddleware()

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	registerPublicRoutes(api, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerDeveloperRoutes(api, rt.handler)
	registerAdminRoutes(api, rt.adminHandler)
}
