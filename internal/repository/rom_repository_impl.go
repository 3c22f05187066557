package repository

import (
	"strings"

	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/model"

	"gorm.io/gorm"
)

type RomRepository struct {
	db *gorm.DB
}

func (r *RomRepository) FindByID(id uint) (*model.Rom, error) {
	var rom model.Rom
	if err := r.db.First(&rom, id).Error; err != nil {
		return nil, err
	}
	return &rom, nil
}

func (r *RomRepository) Create(rom *model.Rom) error {
	return r.db.Create(rom).Error
}

func (r *RomRepository) UpdateByID(id uint, updates map[string]interface{}) (*model.Rom, error) {
	var rom model.Rom
	if err := r.db.First(&rom, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&rom).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &rom, nil
}

func (r *RomRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Rom{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RomRepository) IncrementDownloadCount(id uint) error {
	// 单行原子自增；用 UpdateColumn 避免下载计数刷动 updated_at 影响目录排序
	return r.db.Model(&model.Rom{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *RomRepository) ListApproved() ([]model.Rom, error) {
	var roms []model.Rom
	if err := r.db.Where("is_approved = ?", true).Order("updated_at desc").Find(&roms).Error; err != nil {
		return nil, err
	}
	return roms, nil
}

func (r *RomRepository) ListAll() ([]model.Rom, error) {
	var roms []model.Rom
	if err := r.db.Order("updated_at desc").Find(&roms).Error; err != nil {
		return nil, err
	}
	return roms, nil
}

func (r *RomRepository) ListByDeveloper(developerID uint) ([]model.Rom, error) {
	var roms []model.Rom
	if err := r.db.Where("developer_id = ?", developerID).Order("updated_at desc").Find(&roms).Error; err != nil {
		return nil, err
	}
	return roms, nil
}

func (r *RomRepository) Search(query string) ([]model.Rom, error) {
	// LOWER + LIKE 在四种后端上行为一致，不依赖各家 collation
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var roms []model.Rom
	err := r.db.Where("is_approved = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(maintainer) LIKE ? OR LOWER(rom_type) LIKE ?", pattern, pattern, pattern).
		Order("updated_at desc").
		Find(&roms).Error
	if err != nil {
		return nil, err
	}
	return roms, nil
}

func (r *RomRepository) Filter(params RomFilterParams) ([]model.Rom, error) {
	query := r.db.Where("is_approved = ?", true)
	if constrained(params.AndroidVersion) {
		query = query.Where("android_version = ?", params.AndroidVersion)
	}
	if constrained(params.RomType) {
		query = query.Where("rom_type = ?", params.RomType)
	}
	if constrained(params.Maintainer) {
		query = query.Where("maintainer = ?", params.Maintainer)
	}

	var roms []model.Rom
	if err := query.Order("updated_at desc").Find(&roms).Error; err != nil {
		return nil, err
	}
	return roms, nil
}

func (r *RomRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Rom{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RomRepository) CountApproved() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Rom{}).Where("is_approved = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func constrained(value string) bool {
	return value != "" && value != consts.FilterAll
}
