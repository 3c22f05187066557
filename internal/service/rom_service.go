package service

import (
	"sort"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
)

// ListApprovedRoms 公开目录，按最近更新排序。
func (s *AppService) ListApprovedRoms() ([]model.Rom, error) {
	roms, err := s.repos.Rom.ListApproved()
	if err != nil {
		return nil, common.NewInternalError("获取 ROM 列表失败")
	}
	return roms, nil
}

// FeaturedRoms 精选位：已审核 ROM 里下载量前三。
// 稳定排序，下载量相同时保持原有（最近更新优先）顺序。
func (s *AppService) FeaturedRoms() ([]model.Rom, error) {
	roms, err := s.ListApprovedRoms()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(roms, func(i, j int) bool {
		return roms[i].DownloadCount > roms[j].DownloadCount
	})
	if len(roms) > consts.FeaturedRomCount {
		roms = roms[:consts.FeaturedRomCount]
	}
	return roms, nil
}

// GetRom 详情页按 ID 取单条，不区分审核状态。
func (s *AppService) GetRom(id uint) (*model.Rom, error) {
	rom, err := s.repos.Rom.FindByID(id)
	if err != nil {
		return nil, common.NewNotFoundError("ROM 不存在")
	}
	return rom, nil
}

// SearchRoms 在已审核 ROM 的名称/维护者/家族上做大小写不敏感子串匹配。
func (s *AppService) SearchRoms(query string) ([]model.Rom, error) {
	roms, err := s.repos.Rom.Search(query)
	if err != nil {
		return nil, common.NewInternalError("搜索失败")
	}
	return roms, nil
}

// FilterRoms 条件筛选，AND 语义，"all" 表示不限制。
func (s *AppService) FilterRoms(req dto.FilterRequest) ([]model.Rom, error) {
	roms, err := s.repos.Rom.Filter(repository.RomFilterParams{
		AndroidVersion: req.AndroidVersion,
		RomType:        req.RomType,
		Maintainer:     req.Maintainer,
	})
	if err != nil {
		return nil, common.NewInternalError("筛选失败")
	}
	return roms, nil
}

// RecordDownload 记录一次下载并返回下载地址。
// 未审核的 ROM 对下载接口不可见：旧版只要猜到 ID 就能拉未审核记录的
// 下载地址，这里按未发布处理，统一返回 404。
func (s *AppService) RecordDownload(id uint) (string, error) {
	rom, err := s.repos.Rom.FindByID(id)
	if err != nil || !rom.IsApproved {
		return "", common.NewNotFoundError("ROM 不存在")
	}

	if err := s.repos.Rom.IncrementDownloadCount(id); err != nil {
		return "", common.NewInternalError("记录下载失败")
	}
	return rom.DownloadURL, nil
}
