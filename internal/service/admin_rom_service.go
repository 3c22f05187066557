package service

import (
	"errors"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"

	"gorm.io/gorm"
)

// AdminRomList 审核后台的 ROM 总览，带统计。
type AdminRomList struct {
	Roms          []model.Rom `json:"roms"`
	TotalCount    int64       `json:"totalCount"`
	ApprovedCount int64       `json:"approvedCount"`
	PendingCount  int64       `json:"pendingCount"`
}

// ListAllRomsForAdmin 返回全部 ROM（含未审核）及统计数字。
func (s *AppService) ListAllRomsForAdmin() (*AdminRomList, error) {
	roms, err := s.repos.Rom.ListAll()
	if err != nil {
		return nil, common.NewInternalError("获取 ROM 列表失败")
	}
	total, err := s.repos.Rom.CountAll()
	if err != nil {
		return nil, common.NewInternalError("获取 ROM 列表失败")
	}
	approved, err := s.repos.Rom.CountApproved()
	if err != nil {
		return nil, common.NewInternalError("获取 ROM 列表失败")
	}
	return &AdminRomList{
		Roms:          roms,
		TotalCount:    total,
		ApprovedCount: approved,
		PendingCount:  total - approved,
	}, nil
}

// CreateRomForAdmin 管理员绕过投稿流程直接建档，直接上架。
func (s *AppService) CreateRomForAdmin(req dto.RomPayload) (*model.Rom, error) {
	if !consts.IsValidRomType(req.RomType) {
		return nil, common.NewValidationError("未知的 ROM 家族: " + req.RomType)
	}
	buildStatus := req.BuildStatus
	if buildStatus == "" {
		buildStatus = consts.BuildStatusStable
	}
	if !consts.IsValidBuildStatus(buildStatus) {
		return nil, common.NewValidationError("buildStatus 只能是 stable 或 beta")
	}

	rom := model.Rom{
		Name:           req.Name,
		Codename:       req.Codename,
		Maintainer:     req.Maintainer,
		Version:        req.Version,
		AndroidVersion: req.AndroidVersion,
		RomType:        req.RomType,
		BuildStatus:    buildStatus,
		DownloadURL:    req.DownloadURL,
		Checksum:       req.Checksum,
		Changelog:      req.Changelog,
		FileSize:       req.FileSize,
		IsApproved:     true,
	}
	if err := s.repos.Rom.Create(&rom); err != nil {
		return nil, common.NewInternalError("创建 ROM 失败")
	}
	return &rom, nil
}

// UpdateRomForAdmin 管理员可改任意描述字段。
func (s *AppService) UpdateRomForAdmin(id uint, req dto.RomUpdateRequest) (*model.Rom, error) {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Codename != nil {
		updates["codename"] = *req.Codename
	}
	if req.Maintainer != nil {
		updates["maintainer"] = *req.Maintainer
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.AndroidVersion != nil {
		updates["android_version"] = *req.AndroidVersion
	}
	if req.RomType != nil {
		if !consts.IsValidRomType(*req.RomType) {
			return nil, common.NewValidationError("未知的 ROM 家族: " + *req.RomType)
		}
		updates["rom_type"] = *req.RomType
	}
	if req.BuildStatus != nil {
		if !consts.IsValidBuildStatus(*req.BuildStatus) {
			return nil, common.NewValidationError("buildStatus 只能是 stable 或 beta")
		}
		updates["build_status"] = *req.BuildStatus
	}
	if req.DownloadURL != nil {
		updates["download_url"] = *req.DownloadURL
	}
	if req.Checksum != nil {
		updates["checksum"] = *req.Checksum
	}
	if req.Changelog != nil {
		updates["changelog"] = *req.Changelog
	}

	rom, err := s.repos.Rom.UpdateByID(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("ROM 不存在")
		}
		return nil, common.NewInternalError("更新 ROM 失败")
	}
	return rom, nil
}

// DeleteRomForAdmin 删除任意 ROM，托管文件一并清理。
func (s *AppService) DeleteRomForAdmin(id uint) error {
	rom, err := s.repos.Rom.FindByID(id)
	if err != nil {
		return common.NewNotFoundError("ROM 不存在")
	}

	if rom.FileName != "" {
		s.removeRomFile(rom.FileName)
	}

	removed, err := s.repos.Rom.Delete(id)
	if err != nil {
		return common.NewInternalError("删除 ROM 失败")
	}
	if !removed {
		return common.NewNotFoundError("ROM 不存在")
	}
	return nil
}

// SetApproval 上/下架开关。幂等：重复设置同一个值只会刷新 updated_at。
func (s *AppService) SetApproval(id uint, isApproved bool) (*model.Rom, error) {
	rom, err := s.repos.Rom.UpdateByID(id, map[string]interface{}{
		"is_approved": isApproved,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("ROM 不存在")
		}
		return nil, common.NewInternalError("更新审核状态失败")
	}
	return rom, nil
}
