package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// 测试内容：验证初始化配置会填充默认值并回填开发用 JWT secret。
func TestInitConfig_SetsDefaults(t *testing.T) {
	dir := t.TempDir()

	// 确保不在 release 模式（release 模式下不安全的 secret 会导致 fatal）。
	t.Setenv("NOTHINGROMS_SERVER_MODE", "debug")
	t.Setenv("NOTHINGROMS_JWT_SECRET", "")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port != "5000" {
		t.Fatalf("期望默认端口 5000，实际为 %q", cfg.Server.Port)
	}
	if cfg.Database.Type != "sqlite" {
		t.Fatalf("期望默认数据库 sqlite，实际为 %q", cfg.Database.Type)
	}
	if cfg.JWT.Secret == "" {
		t.Fatalf("开发模式下应回填默认 JWT secret")
	}
	if cfg.Upload.Path != "uploads/roms" {
		t.Fatalf("期望默认上传目录 uploads/roms，实际为 %q", cfg.Upload.Path)
	}
	if cfg.Upload.URLPrefix != "/api/download/" {
		t.Fatalf("期望默认下载前缀 /api/download/，实际为 %q", cfg.Upload.URLPrefix)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}
}

// 测试内容：验证环境变量覆盖 yaml 层级配置。
func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("NOTHINGROMS_SERVER_PORT", "8080")
	t.Setenv("NOTHINGROMS_DATABASE_TYPE", "memory")
	t.Setenv("NOTHINGROMS_ADMIN_USERNAME", "root")

	InitConfig(t.TempDir())

	cfg := Get()
	if cfg.Server.Port != "8080" {
		t.Fatalf("期望端口被环境变量覆盖为 8080，实际为 %q", cfg.Server.Port)
	}
	if cfg.Database.Type != "memory" {
		t.Fatalf("期望数据库类型被覆盖为 memory，实际为 %q", cfg.Database.Type)
	}
	if cfg.Admin.Username != "root" {
		t.Fatalf("期望管理员用户名被覆盖为 root，实际为 %q", cfg.Admin.Username)
	}
}

// 测试内容：修改配置文件后无需重启，新的限流参数自动生效。
func TestInitConfig_HotReload(t *testing.T) {
	t.Setenv("NOTHINGROMS_SERVER_MODE", "debug")

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("limit:\n  auth_burst: 7\n"), 0o644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	InitConfig(dir)
	if got := Get().Limit.AuthBurst; got != 7 {
		t.Fatalf("期望初始 auth_burst 为 7，实际为 %d", got)
	}

	if err := os.WriteFile(configFile, []byte("limit:\n  auth_burst: 9\n"), 0o644); err != nil {
		t.Fatalf("改写配置文件失败: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if Get().Limit.AuthBurst == 9 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("配置文件改写后 auth_burst 未热更新，当前为 %d", Get().Limit.AuthBurst)
}
