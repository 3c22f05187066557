package model

import "time"

// Rom 目录里的一条 ROM 构建记录。is_approved 为 true 才对公网可见。
type Rom struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"index"`
	Name           string    `json:"name" gorm:"not null"`
	Codename       string    `json:"codename" gorm:"not null"`
	Maintainer     string    `json:"maintainer" gorm:"not null"`
	Version        string    `json:"version" gorm:"not null"`
	AndroidVersion string    `json:"androidVersion" gorm:"not null"`
	RomType        string    `json:"romType" gorm:"not null;index"`
	BuildStatus    string    `json:"buildStatus" gorm:"not null;default:stable"`
	DownloadURL    string    `json:"downloadUrl" gorm:"not null"`
	Checksum       string    `json:"checksum"`
	Changelog      string    `json:"changelog"`
	IsApproved     bool      `json:"isApproved" gorm:"not null;default:false;index"`
	DownloadCount  int64     `json:"downloadCount" gorm:"not null;default:0"`
	DeveloperID    *uint     `json:"developerId" gorm:"index"`
	// 以下两个字段只在 ROM 由本站托管（而非外链）时存在
	FileSize string `json:"fileSize"`
	FileName string `json:"fileName"`
}
