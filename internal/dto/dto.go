// Package dto 定义 API 边界上的请求/响应结构。
// 原版在每一层用展开+重命名拼装对象，字段名飘忽不定；
// 这里每个实体只有一份传输结构，绑定时校验一次。
package dto

import (
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/model"
)

type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	DisplayName    string `json:"displayName" binding:"required"`
	Bio            string `json:"bio"`
	TelegramHandle string `json:"telegramHandle"`
	GithubHandle   string `json:"githubHandle"`
}

type LoginRequest struct {
	// 用户名或邮箱均可登录
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdateRequest struct {
	DisplayName    *string `json:"displayName"`
	Bio            *string `json:"bio"`
	TelegramHandle *string `json:"telegramHandle"`
	GithubHandle   *string `json:"githubHandle"`
	Password       *string `json:"password"`
}

// RomPayload 管理员直接建档 / 更新 ROM 用的完整描述字段。
type RomPayload struct {
	Name           string `json:"name" binding:"required"`
	Codename       string `json:"codename" binding:"required"`
	Maintainer     string `json:"maintainer" binding:"required"`
	Version        string `json:"version" binding:"required"`
	AndroidVersion string `json:"androidVersion" binding:"required"`
	RomType        string `json:"romType" binding:"required"`
	BuildStatus    string `json:"buildStatus"`
	DownloadURL    string `json:"downloadUrl" binding:"required"`
	Checksum       string `json:"checksum"`
	Changelog      string `json:"changelog"`
	FileSize       string `json:"fileSize"`
}

// RomUpdateRequest 部分更新，nil 字段不动。
type RomUpdateRequest struct {
	Name           *string `json:"name"`
	Codename       *string `json:"codename"`
	Maintainer     *string `json:"maintainer"`
	Version        *string `json:"version"`
	AndroidVersion *string `json:"androidVersion"`
	RomType        *string `json:"romType"`
	BuildStatus    *string `json:"buildStatus"`
	DownloadURL    *string `json:"downloadUrl"`
	Checksum       *string `json:"checksum"`
	Changelog      *string `json:"changelog"`
}

// RomUploadRequest 开发者上传 ROM 时随 multipart 表单提交的元数据。
type RomUploadRequest struct {
	Name           string `form:"name"`
	Codename       string `form:"codename"`
	Maintainer     string `form:"maintainer"`
	Version        string `form:"version"`
	AndroidVersion string `form:"androidVersion"`
	RomType        string `form:"romType"`
	BuildStatus    string `form:"buildStatus"`
	Checksum       string `form:"checksum"`
	Changelog      string `form:"changelog"`
}

type SubmissionRequest struct {
	Name             string `json:"name"`
	Codename         string `json:"codename"`
	Maintainer       string `json:"maintainer"`
	Version          string `json:"version"`
	AndroidVersion   string `json:"androidVersion"`
	RomType          string `json:"romType"`
	BuildStatus      string `json:"buildStatus"`
	DownloadURL      string `json:"downloadUrl"`
	FileSize         string `json:"fileSize"`
	Checksum         string `json:"checksum"`
	Changelog        string `json:"changelog"`
	SubmitterName    string `json:"submitterName"`
	SubmitterContact string `json:"submitterContact"`
	AdditionalNotes  string `json:"additionalNotes"`
}

type FilterRequest struct {
	AndroidVersion string `json:"androidVersion"`
	RomType        string `json:"romType"`
	Maintainer     string `json:"maintainer"`
}

type ReviewRequest struct {
	ReviewNote string `json:"reviewNote"`
}

type ApprovalRequest struct {
	IsApproved *bool  `json:"isApproved" binding:"required"`
	ReviewNote string `json:"reviewNote"`
}

// DeveloperProfile 对外的账号视图，永远不带密码。
type DeveloperProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	Bio            string    `json:"bio,omitempty"`
	TelegramHandle string    `json:"telegramHandle,omitempty"`
	GithubHandle   string    `json:"githubHandle,omitempty"`
	Verified       bool      `json:"isVerified"`
	Role           string    `json:"role"`
	IsAdmin        bool      `json:"isAdmin"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewDeveloperProfile(d *model.Developer) DeveloperProfile {
	return DeveloperProfile{
		ID:             d.ID,
		Username:       d.Username,
		Email:          d.Email,
		DisplayName:    d.DisplayName,
		Bio:            d.Bio,
		TelegramHandle: d.TelegramHandle,
		GithubHandle:   d.GithubHandle,
		Verified:       d.Verified,
		Role:           d.Role,
		// 旧前端仍按 isAdmin 布尔值判断入口，冗余输出一份
		IsAdmin:   d.IsAdmin(),
		CreatedAt: d.CreatedAt,
	}
}
