package db

import (
	"log"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// seedAdminAccount 引导初始管理员。数据库里已经有管理员时什么都不做，
// 所以修改配置不会覆盖线上已改过密码的账号。
func seedAdminAccount() {
	var count int64
	if err := DB.Model(&model.Developer{}).Where("role = ?", string(consts.RoleAdmin)).Count(&count).Error; err != nil {
		log.Printf("❌ 检查管理员账号失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	cfg := config.Get()
	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ 管理员密码加密失败: %v", err)
		return
	}

	admin := model.Developer{
		Username:    cfg.Admin.Username,
		Email:       cfg.Admin.Email,
		Password:    string(hashed),
		DisplayName: "Administrator",
		Bio:         "System Administrator",
		Verified:    true,
		Role:        string(consts.RoleAdmin),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("❌ 创建管理员账号失败: %v", err)
		return
	}

	log.Println("✅ 管理员账号创建成功")
	log.Printf("📧 登录邮箱: %s", cfg.Admin.Email)
	if cfg.Admin.Password == "himveroro" {
		log.Println("⚠️  管理员仍在使用默认密码，请尽快修改！")
	}
}

// seedSampleRoms 写入两条演示用的已审核 ROM，只在目录为空时执行。
func seedSampleRoms() {
	var count int64
	if err := DB.Model(&model.Rom{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	samples := []model.Rom{
		{
			Name:           "LineageOS 21",
			Codename:       "Pacman",
			Maintainer:     "@dev_xyz",
			Version:        "v21.0-20240115",
			AndroidVersion: "Android 14",
			RomType:        "LineageOS",
			BuildStatus:    consts.BuildStatusStable,
			DownloadURL:    "https://sourceforge.net/projects/lineageos/files/lineage-21.zip",
			Checksum:       "sha256:1234567890abcdef...",
			Changelog:      "- Fixed WiFi issues\n- Improved battery life\n- Updated security patches",
			IsApproved:     true,
			DownloadCount:  1520,
			FileSize:       "890 MB",
			FileName:       "lineage-21-pacman.zip",
		},
		{
			Name:           "PixelOS 14",
			Codename:       "Pacman",
			Maintainer:     "@pixel_dev",
			Version:        "v14.0.5-stable",
			AndroidVersion: "Android 14",
			RomType:        "PixelOS",
			BuildStatus:    consts.BuildStatusBeta,
			DownloadURL:    "https://sourceforge.net/projects/pixelos/files/pixelos-14.zip",
			Checksum:       "sha256:abcdef1234567890...",
			Changelog:      "- Pixel Experience features\n- Smooth performance\n- Latest Android 14 features",
			IsApproved:     true,
			DownloadCount:  980,
			FileSize:       "920 MB",
			FileName:       "pixelos-14-pacman.zip",
		},
	}

	for i := range samples {
		if err := DB.Create(&samples[i]).Error; err != nil {
			log.Printf("❌ 写入示例 ROM 失败: %v", err)
			return
		}
	}
	log.Println("✅ 示例 ROM 已写入")
}
