package model

import (
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/consts"
)

// Developer 开发者账号。原版同时维护 users 和 developers 两张账号表，
// 管理员在两边各引导一次；这里统一为一个实体，角色用枚举区分。
type Developer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Username       string    `json:"username" gorm:"unique;not null;size:64"`
	Email          string    `json:"email" gorm:"unique;not null;size:255"`
	Password       string    `json:"-" gorm:"not null"`
	DisplayName    string    `json:"displayName" gorm:"not null"`
	Bio            string    `json:"bio"`
	TelegramHandle string    `json:"telegramHandle"`
	GithubHandle   string    `json:"githubHandle"`
	Verified       bool      `json:"isVerified" gorm:"default:false"`
	Role           string    `json:"role" gorm:"not null;default:developer;size:16"`
	Roms           []Rom     `json:"-" gorm:"foreignKey:DeveloperID"`
}

func (d *Developer) IsAdmin() bool {
	return d.Role == string(consts.RoleAdmin)
}
