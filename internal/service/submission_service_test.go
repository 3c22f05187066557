package service

import (
	"strings"
	"testing"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"
)

func sampleSubmission() dto.SubmissionRequest {
	return dto.SubmissionRequest{
		Name:             "LineageOS 21",
		Codename:         "Pacman",
		Version:          "21.0",
		AndroidVersion:   "14",
		RomType:          "LineageOS",
		BuildStatus:      "stable",
		DownloadURL:      "https://example.com/lineage.zip",
		FileSize:         "1.2 GB",
		Checksum:         "abc123",
		Changelog:        "initial build",
		SubmitterName:    "alice",
		SubmitterContact: "t.me/alice",
	}
}

// 测试内容：验证缺失必填字段时投稿被拒，错误信息列出缺失项。
func TestSubmitRom_MissingFields(t *testing.T) {
	svc, gdb := setupTestService(t)

	req := sampleSubmission()
	req.Name = ""
	req.DownloadURL = ""

	_, err := svc.SubmitRom(req, nil)
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got: %#v (%v)", svcErr, err)
	}
	if !strings.Contains(svcErr.Message, "name") || !strings.Contains(svcErr.Message, "downloadUrl") {
		t.Fatalf("错误信息应列出缺失字段: %s", svcErr.Message)
	}

	var count int64
	_ = gdb.Model(&model.Submission{}).Count(&count).Error
	if count != 0 {
		t.Fatalf("校验失败不应落库，实际为 %d 条", count)
	}
}

// 测试内容：验证匿名投稿必须带提交人和联系方式。
func TestSubmitRom_AnonymousNeedsContact(t *testing.T) {
	svc, _ := setupTestService(t)

	req := sampleSubmission()
	req.SubmitterName = ""
	req.SubmitterContact = ""

	_, err := svc.SubmitRom(req, nil)
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got: %#v (%v)", svcErr, err)
	}

	// 登录开发者投稿不需要联系方式
	devID := uint(7)
	submission, err := svc.SubmitRom(req, &devID)
	if err != nil {
		t.Fatalf("开发者投稿失败: %v", err)
	}
	if submission.DeveloperID == nil || *submission.DeveloperID != devID {
		t.Fatalf("投稿应挂到开发者名下: %+v", submission.DeveloperID)
	}
	if submission.Status != consts.SubmissionStatusPending {
		t.Fatalf("新投稿应为 pending，实际为 %s", submission.Status)
	}
}

// 测试内容：验证审核通过时字段原样复制到新 ROM，上架且下载计数归零。
func TestApproveSubmission_CopiesFields(t *testing.T) {
	svc, _ := setupTestService(t)

	req := sampleSubmission()
	req.Maintainer = "" // 触发署名回退
	submission, err := svc.SubmitRom(req, nil)
	if err != nil {
		t.Fatalf("投稿失败: %v", err)
	}

	updated, rom, err := svc.ApproveSubmission(submission.ID, "")
	if err != nil {
		t.Fatalf("ApproveSubmission 错误: %v", err)
	}

	if rom.Name != req.Name || rom.Codename != req.Codename || rom.Version != req.Version ||
		rom.AndroidVersion != req.AndroidVersion || rom.RomType != req.RomType ||
		rom.DownloadURL != req.DownloadURL || rom.Checksum != req.Checksum ||
		rom.Changelog != req.Changelog || rom.FileSize != req.FileSize {
		t.Fatalf("ROM 字段应与投稿一致: %+v", rom)
	}
	if rom.Maintainer != req.SubmitterName {
		t.Fatalf("维护者应回退为提交人 %q，实际为 %q", req.SubmitterName, rom.Maintainer)
	}
	if !rom.IsApproved {
		t.Fatalf("审核通过的 ROM 应处于上架状态")
	}
	if rom.DownloadCount != 0 {
		t.Fatalf("新上架 ROM 下载计数应为 0，实际为 %d", rom.DownloadCount)
	}

	if updated.Status != consts.SubmissionStatusApproved {
		t.Fatalf("投稿状态应为 approved，实际为 %s", updated.Status)
	}
	if updated.ReviewNote != "Approved by admin" {
		t.Fatalf("空审核意见应回退为默认值，实际为 %q", updated.ReviewNote)
	}
	if updated.RomID == nil || *updated.RomID != rom.ID {
		t.Fatalf("投稿应指向新建 ROM: %+v", updated.RomID)
	}
	if updated.ReviewedAt == nil {
		t.Fatalf("审核时间应被记录")
	}
}

// 测试内容：验证终态投稿不可重复审核，也不会重复建档。
func TestApproveSubmission_TerminalStateGuard(t *testing.T) {
	svc, gdb := setupTestService(t)

	submission, err := svc.SubmitRom(sampleSubmission(), nil)
	if err != nil {
		t.Fatalf("投稿失败: %v", err)
	}
	if _, _, err := svc.ApproveSubmission(submission.ID, "looks good"); err != nil {
		t.Fatalf("首次审核失败: %v", err)
	}

	_, _, err = svc.ApproveSubmission(submission.ID, "again")
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeConflict {
		t.Fatalf("期望 conflict 错误, got: %#v (%v)", svcErr, err)
	}

	_, err = svc.RejectSubmission(submission.ID, "changed my mind")
	svcErr, ok = common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeConflict {
		t.Fatalf("期望 conflict 错误, got: %#v (%v)", svcErr, err)
	}

	var romCount int64
	_ = gdb.Model(&model.Rom{}).Count(&romCount).Error
	if romCount != 1 {
		t.Fatalf("重复审核不应重复建档，实际为 %d 条", romCount)
	}
}

// 测试内容：验证驳回必须填写审核意见，空意见时投稿保持 pending。
func TestRejectSubmission_RequiresNote(t *testing.T) {
	svc, _ := setupTestService(t)

	submission, err := svc.SubmitRom(sampleSubmission(), nil)
	if err != nil {
		t.Fatalf("投稿失败: %v", err)
	}

	_, err = svc.RejectSubmission(submission.ID, "   ")
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got: %#v (%v)", svcErr, err)
	}

	got, err := svc.repos.Submission.FindByID(submission.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if got.Status != consts.SubmissionStatusPending {
		t.Fatalf("空意见驳回后应保持 pending，实际为 %s", got.Status)
	}

	updated, err := svc.RejectSubmission(submission.ID, "checksum mismatch")
	if err != nil {
		t.Fatalf("驳回失败: %v", err)
	}
	if updated.Status != consts.SubmissionStatusRejected || updated.ReviewNote != "checksum mismatch" {
		t.Fatalf("非预期驳回结果: %+v", updated)
	}
	if updated.RomID != nil {
		t.Fatalf("驳回的投稿不应关联 ROM")
	}
}
