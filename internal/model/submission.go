package model

import "time"

// Submission 待审核的 ROM 投稿。原版把它放在进程内的一个切片里，
// 重启即丢；现在与 Rom 一样落库，走同一套存储层。
//
// 状态机：pending → approved | rejected，终态不可再变更。
type Submission struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SubmittedAt    time.Time `json:"submittedAt" gorm:"autoCreateTime;index"`
	Name           string    `json:"name" gorm:"not null"`
	Codename       string    `json:"codename" gorm:"not null"`
	Maintainer     string    `json:"maintainer"`
	Version        string    `json:"version" gorm:"not null"`
	AndroidVersion string    `json:"androidVersion" gorm:"not null"`
	RomType        string    `json:"romType" gorm:"not null"`
	BuildStatus    string    `json:"buildStatus" gorm:"not null;default:stable"`
	DownloadURL    string    `json:"downloadUrl" gorm:"not null"`
	FileSize       string    `json:"fileSize"`
	Checksum       string    `json:"checksum"`
	Changelog      string    `json:"changelog"`
	// 匿名投稿的联系方式；登录开发者投稿时填 DeveloperID
	SubmitterName    string `json:"submitterName"`
	SubmitterContact string `json:"submitterContact"`
	AdditionalNotes  string `json:"additionalNotes"`
	DeveloperID      *uint  `json:"developerId" gorm:"index"`
	Status           string `json:"status" gorm:"not null;default:pending;index"`
	ReviewNote       string `json:"reviewNote"`
	// 审核通过后指向新建的 Rom
	RomID      *uint      `json:"romId"`
	ReviewedAt *time.Time `json:"reviewedAt"`
}
