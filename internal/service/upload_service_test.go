package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/testutils"
)

// zip 文件魔数 PK\x03\x04
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00}

func makeUploadFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分段失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["file"]
	if len(fhs) != 1 {
		t.Fatalf("期望 1 file header，实际为 %d", len(fhs))
	}
	return fhs[0]
}

func setupUploadTest(t *testing.T) (*AppService, uint, string) {
	t.Helper()
	dir := t.TempDir()
	envs := []testutils.SavedEnv{testutils.SetEnv("NOTHINGROMS_UPLOAD_PATH", dir)}
	t.Cleanup(func() { testutils.RestoreEnv(envs) })

	svc, _ := setupTestService(t)

	_, developer, err := svc.RegisterDeveloper(dto.RegisterRequest{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "abc12345",
		DisplayName: "Alice",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	return svc, developer.ID, dir
}

func sampleUploadMeta() dto.RomUploadRequest {
	return dto.RomUploadRequest{
		Name:           "LineageOS 21",
		Codename:       "Pacman",
		Version:        "21.0",
		AndroidVersion: "14",
		RomType:        "LineageOS",
	}
}

// 测试内容：验证上传成功后文件落盘、建档待审核、下载地址带托管前缀。
func TestProcessRomUpload_Success(t *testing.T) {
	svc, devID, dir := setupUploadTest(t)

	fh := makeUploadFile(t, "lineage-21.zip", zipMagic)
	rom, err := svc.ProcessRomUpload(fh, sampleUploadMeta(), devID)
	if err != nil {
		t.Fatalf("ProcessRomUpload 错误: %v", err)
	}

	if rom.IsApproved {
		t.Fatalf("上传的 ROM 应待审核而非直接上架")
	}
	if rom.DeveloperID == nil || *rom.DeveloperID != devID {
		t.Fatalf("ROM 应挂到上传者名下: %+v", rom.DeveloperID)
	}
	if !strings.HasPrefix(rom.DownloadURL, config.Get().Upload.URLPrefix) {
		t.Fatalf("下载地址应带托管前缀: %s", rom.DownloadURL)
	}
	if !strings.HasSuffix(rom.FileName, "lineage-21.zip") {
		t.Fatalf("存储文件名应保留原始文件名后缀: %s", rom.FileName)
	}

	if _, err := os.Stat(filepath.Join(dir, rom.FileName)); err != nil {
		t.Fatalf("托管文件应存在: %v", err)
	}
}

// 测试内容：验证非 zip 文件被拒且不落盘。
func TestProcessRomUpload_RejectsNonZip(t *testing.T) {
	svc, devID, dir := setupUploadTest(t)

	fh := makeUploadFile(t, "rom.img", []byte("not a zip at all"))
	_, err := svc.ProcessRomUpload(fh, sampleUploadMeta(), devID)
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got: %#v (%v)", svcErr, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("被拒的上传不应留下文件，目录里有 %d 个", len(entries))
	}
}

// 测试内容：验证元数据缺失时上传被拒。
func TestProcessRomUpload_MissingMeta(t *testing.T) {
	svc, devID, _ := setupUploadTest(t)

	meta := sampleUploadMeta()
	meta.Name = ""
	meta.RomType = ""

	fh := makeUploadFile(t, "rom.zip", zipMagic)
	_, err := svc.ProcessRomUpload(fh, meta, devID)
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got: %#v (%v)", svcErr, err)
	}
	if !strings.Contains(svcErr.Message, "name") {
		t.Fatalf("错误信息应列出缺失字段: %s", svcErr.Message)
	}
}

// 测试内容：验证只有属主能修改和删除自己的 ROM。
func TestOwnRomOwnershipEnforced(t *testing.T) {
	svc, devID, dir := setupUploadTest(t)

	fh := makeUploadFile(t, "rom.zip", zipMagic)
	rom, err := svc.ProcessRomUpload(fh, sampleUploadMeta(), devID)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	_, other, err := svc.RegisterDeveloper(dto.RegisterRequest{
		Username:    "bob",
		Email:       "bob@example.com",
		Password:    "abc12345",
		DisplayName: "Bob",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	newName := "hijacked"
	_, err = svc.UpdateOwnRom(other.ID, rom.ID, dto.RomUpdateRequest{Name: &newName})
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeForbidden {
		t.Fatalf("期望 forbidden 错误, got: %#v (%v)", svcErr, err)
	}

	err = svc.DeleteOwnRom(other.ID, rom.ID)
	svcErr, ok = common.AsServiceError(err)
	if !ok || svcErr.Code != common.ErrorCodeForbidden {
		t.Fatalf("期望 forbidden 错误, got: %#v (%v)", svcErr, err)
	}

	// 属主删除成功，托管文件一并清理
	if err := svc.DeleteOwnRom(devID, rom.ID); err != nil {
		t.Fatalf("属主删除失败: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, rom.FileName)); !os.IsNotExist(err) {
		t.Fatalf("托管文件应被删除: %v", err)
	}

	roms, err := svc.ListOwnRoms(devID)
	if err != nil {
		t.Fatalf("ListOwnRoms 错误: %v", err)
	}
	if len(roms) != 0 {
		t.Fatalf("删除后名下不应有 ROM，实际为 %d", len(roms))
	}
}

// 测试内容：验证属主更新只放行白名单字段。
func TestUpdateOwnRom_AllowedFields(t *testing.T) {
	svc, devID, _ := setupUploadTest(t)

	fh := makeUploadFile(t, "rom.zip", zipMagic)
	rom, err := svc.ProcessRomUpload(fh, sampleUploadMeta(), devID)
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	newVersion := "21.1"
	newChangelog := "security patch"
	newURL := "https://evil.example.com/replace.zip"
	updated, err := svc.UpdateOwnRom(devID, rom.ID, dto.RomUpdateRequest{
		Version:     &newVersion,
		Changelog:   &newChangelog,
		DownloadURL: &newURL,
	})
	if err != nil {
		t.Fatalf("UpdateOwnRom 错误: %v", err)
	}
	if updated.Version != newVersion || updated.Changelog != newChangelog {
		t.Fatalf("白名单字段应更新: %+v", updated)
	}
	if updated.DownloadURL != rom.DownloadURL {
		t.Fatalf("downloadUrl 不在白名单内，不应被改动: %s", updated.DownloadURL)
	}
}

// 测试内容：验证下载路径解析拒绝路径穿越并对缺失文件报 404。
func TestResolveDownloadFile_TraversalGuard(t *testing.T) {
	svc, _, dir := setupUploadTest(t)

	if err := os.WriteFile(filepath.Join(dir, "good.zip"), zipMagic, 0644); err != nil {
		t.Fatalf("写文件失败: %v", err)
	}

	path, err := svc.ResolveDownloadFile("good.zip")
	if err != nil {
		t.Fatalf("ResolveDownloadFile 错误: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("解析路径应位于上传目录内: %s", path)
	}

	for _, bad := range []string{"../secret.txt", "..", "a/../../etc/passwd", "missing.zip"} {
		_, err := svc.ResolveDownloadFile(bad)
		svcErr, ok := common.AsServiceError(err)
		if !ok || svcErr.Code != common.ErrorCodeNotFound {
			t.Fatalf("%q 期望 not_found 错误, got: %#v (%v)", bad, svcErr, err)
		}
	}
}
