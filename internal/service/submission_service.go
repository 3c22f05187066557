package service

import (
	"strings"
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"
)

// SubmitRom 创建一条待审核投稿。developerID 为 nil 时是匿名公开投稿，
// 必须留下提交人和联系方式，否则审核没法回访。
func (s *AppService) SubmitRom(req dto.SubmissionRequest, developerID *uint) (*model.Submission, error) {
	required := []struct {
		value string
		label string
	}{
		{req.Name, "name"},
		{req.Version, "version"},
		{req.Codename, "codename"},
		{req.AndroidVersion, "androidVersion"},
		{req.RomType, "romType"},
		{req.DownloadURL, "downloadUrl"},
		{req.FileSize, "fileSize"},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return nil, common.NewValidationError("缺少必填字段: " + strings.Join(missing, ", "))
	}

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

	if developerID == nil {
		if strings.TrimSpace(req.SubmitterName) == "" || strings.TrimSpace(req.SubmitterContact) == "" {
			return nil, common.NewValidationError("匿名投稿必须填写提交人和联系方式")
		}
	}

	submission := model.Submission{
		Name:             req.Name,
		Codename:         req.Codename,
		Maintainer:       req.Maintainer,
		Version:          req.Version,
		AndroidVersion:   req.AndroidVersion,
		RomType:          req.RomType,
		BuildStatus:      buildStatus,
		DownloadURL:      req.DownloadURL,
		FileSize:         req.FileSize,
		Checksum:         req.Checksum,
		Changelog:        req.Changelog,
		SubmitterName:    req.SubmitterName,
		SubmitterContact: req.SubmitterContact,
		AdditionalNotes:  req.AdditionalNotes,
		DeveloperID:      developerID,
		Status:           consts.SubmissionStatusPending,
	}
	if err := s.repos.Submission.Create(&submission); err != nil {
		return nil, common.NewInternalError("投稿保存失败")
	}
	return &submission, nil
}

// ListSubmissionsForAdmin 审核后台的完整投稿列表（含已处理）。
func (s *AppService) ListSubmissionsForAdmin() ([]model.Submission, error) {
	submissions, err := s.repos.Submission.ListAll()
	if err != nil {
		return nil, common.NewInternalError("获取投稿列表失败")
	}
	return submissions, nil
}

// ListMySubmissions 开发者查看自己的投稿。
func (s *AppService) ListMySubmissions(developerID uint) ([]model.Submission, error) {
	submissions, err := s.repos.Submission.ListByDeveloper(developerID)
	if err != nil {
		return nil, common.NewInternalError("获取投稿列表失败")
	}
	return submissions, nil
}

// ApproveSubmission 通过投稿并上架。
// 终态保护：已审核过的投稿不允许再次审核，避免重复建档。
// 建档和投稿状态更新不在一个事务里，中间崩溃会留下已上架但状态
// 仍为 pending 的投稿，重审时人工处理即可，这里不做跨表事务。
func (s *AppService) ApproveSubmission(id uint, reviewNote string) (*model.Submission, *model.Rom, error) {
	submission, err := s.repos.Submission.FindByID(id)
	if err != nil {
		return nil, nil, common.NewNotFoundError("投稿不存在")
	}
	if submission.Status != consts.SubmissionStatusPending {
		return nil, nil, common.NewConflictError("该投稿已审核，不能重复操作")
	}

	maintainer := submission.Maintainer
	if maintainer == "" {
		maintainer = submission.SubmitterName
	}
	if reviewNote == "" {
		reviewNote = "Approved by admin"
	}

	rom := model.Rom{
		Name:           submission.Name,
		Codename:       submission.Codename,
		Maintainer:     maintainer,
		Version:        submission.Version,
		AndroidVersion: submission.AndroidVersion,
		RomType:        submission.RomType,
		BuildStatus:    submission.BuildStatus,
		DownloadURL:    submission.DownloadURL,
		Checksum:       submission.Checksum,
		Changelog:      submission.Changelog,
		FileSize:       submission.FileSize,
		IsApproved:     true,
		DownloadCount:  0,
		DeveloperID:    submission.DeveloperID,
	}
	if err := s.repos.Rom.Create(&rom); err != nil {
		return nil, nil, common.NewInternalError("上架 ROM 失败")
	}

	now := time.Now()
	updated, err := s.repos.Submission.UpdateByID(id, map[string]interface{}{
		"status":      consts.SubmissionStatusApproved,
		"review_note": reviewNote,
		"rom_id":      rom.ID,
		"reviewed_at": now,
	})
	if err != nil {
		return nil, nil, common.NewInternalError("更新投稿状态失败")
	}
	return updated, &rom, nil
}

// RejectSubmission 驳回投稿，审核意见必填。
func (s *AppService) RejectSubmission(id uint, reviewNote string) (*model.Submission, error) {
	if strings.TrimSpace(reviewNote) == "" {
		return nil, common.NewValidationError("驳回必须填写审核意见")
	}

	submission, err := s.repos.Submission.FindByID(id)
	if err != nil {
		return nil, common.NewNotFoundError("投稿不存在")
	}
	if submission.Status != consts.SubmissionStatusPending {
		return nil, common.NewConflictError("该投稿已审核，不能重复操作")
	}

	now := time.Now()
	updated, err := s.repos.Submission.UpdateByID(id, map[string]interface{}{
		"status":      consts.SubmissionStatusRejected,
		"review_note": reviewNote,
		"reviewed_at": now,
	})
	if err != nil {
		return nil, common.NewInternalError("更新投稿状态失败")
	}
	return updated, nil
}
