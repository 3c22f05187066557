package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	adminhandler "github.com/ItzArrav/nothingroms-admin/internal/handler/admin"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/db"
	"github.com/ItzArrav/nothingroms-admin/internal/handler"
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
	"github.com/ItzArrav/nothingroms-admin/internal/router"
	"github.com/ItzArrav/nothingroms-admin/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {

	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig("")
	db.InitDB()

	uploadPath := config.Get().Upload.Path
	checkSecurePath(uploadPath)
	if err := os.MkdirAll(uploadPath, 0755); err != nil {
		log.Fatal("无法创建上传目录: ", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	repos := repository.NewRepositories(
		repository.NewDeveloperRepository(db.DB),
		repository.NewRomRepository(db.DB),
		repository.NewSubmissionRepository(db.DB),
	)
	appService := service.NewAppService(repos)

	r := gin.Default()
	rt := router.NewRouter(handler.NewHandler(appService), adminhandler.NewHandler(appService))
	rt.Init(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "API not found"})
	})

	// 导出模式
	if *exportRoutes {
		exportAPI(r)
		return // 导出后直接退出程序，不启动 Web 服务
	}

	printWelcomeMessage()

	// 停机配置
	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		// 服务连接
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ 服务强制关闭:", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ Redis 关闭失败: %v", err)
	}
	log.Println("✅ 服务已退出")
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	var exportList []RouteInfo
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, _ := json.MarshalIndent(exportList, "", "  ")
	_ = os.WriteFile("routes.json", file, 0644)

	println("✅ 路由已成功导出到 routes.json")
}

func checkSecurePath(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("❌ 路径解析失败: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("❌ 无法获取当前工作目录: %v", err)
	}

	// 检查是否直接指向项目根目录
	if absPath == cwd {
		log.Fatalf("❌ 安全配置错误: 上传目录 '%s' 不能设置为项目根目录！这会导致源代码泄露。", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		relSlash := filepath.ToSlash(rel)

		// 允许的安全目录列表
		// 只有位于这些目录下的路径才被允许作为上传目录
		allowedDirs := []string{
			"uploads",
			"public",
			"assets",
			"static",
			"tmp",
		}

		isAllowed := false
		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			log.Fatalf("❌ 安全配置错误: 上传目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)。\n这能防止意外暴露源代码或配置文件 (如 internal, cmd 等)。", path, relSlash, allowedDirs)
		}
	}
}
