package repository

import "github.com/ItzArrav/nothingroms-admin/internal/model"

// RomFilterParams 目录筛选条件，AND 语义；空串或 "all" 表示不限制。
type RomFilterParams struct {
	AndroidVersion string
	RomType        string
	Maintainer     string
}

type RomStore interface {
	FindByID(id uint) (*model.Rom, error)
	Create(rom *model.Rom) error
	// UpdateByID 合并字段并刷新 updated_at；id 不存在时返回 gorm.ErrRecordNotFound
	UpdateByID(id uint, updates map[string]interface{}) (*model.Rom, error)
	// Delete 返回是否真的删除了一行
	Delete(id uint) (bool, error)
	IncrementDownloadCount(id uint) error
	ListApproved() ([]model.Rom, error)
	ListAll() ([]model.Rom, error)
	ListByDeveloper(developerID uint) ([]model.Rom, error)
	Search(query string) ([]model.Rom, error)
	Filter(params RomFilterParams) ([]model.Rom, error)
	CountAll() (int64, error)
	CountApproved() (int64, error)
}
