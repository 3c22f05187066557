package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"
	"github.com/ItzArrav/nothingroms-admin/internal/utils"

	"github.com/google/uuid"
)

// ProcessRomUpload 处理开发者上传 ROM 压缩包。
// 流程：校验元数据 → 校验文件 → 落盘 → 建档（待审核）。
// 落盘之后任何一步失败都必须把文件删掉，不留孤儿文件。
func (s *AppService) ProcessRomUpload(file *multipart.FileHeader, req dto.RomUploadRequest, developerID uint) (*model.Rom, error) {
	if file == nil {
		return nil, common.NewValidationError("缺少 ROM 文件")
	}
	if file.Size > consts.MaxRomUploadSize {
		return nil, common.NewValidationError("文件过大，最大允许 2GB")
	}

	developer, err := s.repos.Developer.FindByID(developerID)
	if err != nil {
		return nil, common.NewUnauthorizedError("账号不存在")
	}

	maintainer := req.Maintainer
	if maintainer == "" {
		maintainer = developer.DisplayName
	}

	if err := validateUploadMeta(req); err != nil {
		return nil, err
	}
	buildStatus := req.BuildStatus
	if buildStatus == "" {
		buildStatus = consts.BuildStatusStable
	}
	if !consts.IsValidBuildStatus(buildStatus) {
		return nil, common.NewValidationError("buildStatus 只能是 stable 或 beta")
	}

	// 校验文件内容（magic bytes 或 .zip 扩展名）
	src, err := file.Open()
	if err != nil {
		return nil, common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateArchiveContent(src, file.Filename); !valid {
		return nil, common.NewValidationError(msg)
	}

	// 生成唯一文件名：<毫秒时间戳>-<随机段>-<原始文件名>
	original := sanitizeFilename(file.Filename)
	storedName := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), original)

	uploadRoot := config.Get().Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/roms"
	}
	if err := os.MkdirAll(uploadRoot, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, common.NewInternalError("系统错误: 无法创建存储目录")
	}

	dst, err := utils.SecureJoin(uploadRoot, storedName)
	if err != nil {
		return nil, common.NewInternalError("系统错误: 存储路径异常")
	}

	out, err := os.Create(dst)
	if err != nil {
		return nil, common.NewInternalError("系统错误: 无法创建文件")
	}
	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return nil, common.NewInternalError("文件保存失败")
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return nil, common.NewInternalError("文件保存失败")
	}

	rom := model.Rom{
		Name:           req.Name,
		Codename:       req.Codename,
		Maintainer:     maintainer,
		Version:        req.Version,
		AndroidVersion: req.AndroidVersion,
		RomType:        req.RomType,
		BuildStatus:    buildStatus,
		DownloadURL:    config.Get().Upload.URLPrefix + storedName,
		Checksum:       req.Checksum,
		Changelog:      req.Changelog,
		FileName:       storedName,
		FileSize:       utils.FormatFileSize(file.Size),
		IsApproved:     false,
		DeveloperID:    &developerID,
	}
	if err := s.repos.Rom.Create(&rom); err != nil {
		// 建档失败，清理刚写入的文件
		_ = os.Remove(dst)
		return nil, common.NewInternalError("ROM 建档失败")
	}
	return &rom, nil
}

// ListOwnRoms 开发者名下的全部 ROM。
func (s *AppService) ListOwnRoms(developerID uint) ([]model.Rom, error) {
	roms, err := s.repos.Rom.ListByDeveloper(developerID)
	if err != nil {
		return nil, common.NewInternalError("获取 ROM 列表失败")
	}
	return roms, nil
}

// UpdateOwnRom 开发者更新自己的 ROM。
// 可改字段与旧版一致：name / version / androidVersion / changelog。
func (s *AppService) UpdateOwnRom(developerID, romID uint, req dto.RomUpdateRequest) (*model.Rom, error) {
	rom, err := s.repos.Rom.FindByID(romID)
	if err != nil {
		return nil, common.NewNotFoundError("ROM 不存在")
	}
	if rom.DeveloperID == nil || *rom.DeveloperID != developerID {
		return nil, common.NewForbiddenError("只能修改自己的 ROM")
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.AndroidVersion != nil {
		updates["android_version"] = *req.AndroidVersion
	}
	if req.Changelog != nil {
		updates["changelog"] = *req.Changelog
	}

	updated, err := s.repos.Rom.UpdateByID(romID, updates)
	if err != nil {
		return nil, common.NewInternalError("更新 ROM 失败")
	}
	return updated, nil
}

// DeleteOwnRom 开发者删除自己的 ROM，托管文件一并删掉。
func (s *AppService) DeleteOwnRom(developerID, romID uint) error {
	rom, err := s.repos.Rom.FindByID(romID)
	if err != nil {
		return common.NewNotFoundError("ROM 不存在")
	}
	if rom.DeveloperID == nil || *rom.DeveloperID != developerID {
		return common.NewForbiddenError("只能删除自己的 ROM")
	}

	if rom.FileName != "" {
		s.removeRomFile(rom.FileName)
	}

	removed, err := s.repos.Rom.Delete(romID)
	if err != nil {
		return common.NewInternalError("删除 ROM 失败")
	}
	if !removed {
		return common.NewNotFoundError("ROM 不存在")
	}
	return nil
}

// ResolveDownloadFile 把下载接口的文件名解析为安全的磁盘路径。
func (s *AppService) ResolveDownloadFile(filename string) (string, error) {
	uploadRoot := config.Get().Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/roms"
	}

	path, err := utils.SecureJoin(uploadRoot, filename)
	if err != nil {
		return "", common.NewNotFoundError("文件不存在")
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", common.NewNotFoundError("文件不存在")
	}
	return path, nil
}

// removeRomFile 删除托管文件；删不掉只记日志，数据库记录照常删除。
func (s *AppService) removeRomFile(fileName string) {
	uploadRoot := config.Get().Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/roms"
	}
	path, err := utils.SecureJoin(uploadRoot, fileName)
	if err != nil {
		log.Printf("⚠️ 非法的托管文件名 %q: %v", fileName, err)
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ 删除托管文件失败 %q: %v", fileName, err)
	}
}

func validateUploadMeta(req dto.RomUploadRequest) error {
	var missing []string
	for _, f := range []struct {
		value string
		label string
	}{
		{req.Name, "name"},
		{req.Codename, "codename"},
		{req.Version, "version"},
		{req.AndroidVersion, "androidVersion"},
		{req.RomType, "romType"},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return common.NewValidationError("缺少必填字段: " + strings.Join(missing, ", "))
	}
	if !consts.IsValidRomType(req.RomType) {
		return common.NewValidationError("未知的 ROM 家族: " + req.RomType)
	}
	return nil
}

// sanitizeFilename 去掉路径部分，只保留安全的文件名字符。
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "rom.zip"
	}
	return name
}
