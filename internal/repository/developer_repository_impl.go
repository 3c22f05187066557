package repository

import (
	"github.com/ItzArrav/nothingroms-admin/internal/model"

	"gorm.io/gorm"
)

type DeveloperRepository struct {
	db *gorm.DB
}

func (r *DeveloperRepository) FindByID(id uint) (*model.Developer, error) {
	var developer model.Developer
	if err := r.db.First(&developer, id).Error; err != nil {
		return nil, err
	}
	return &developer, nil
}

func (r *DeveloperRepository) FindByUsername(username string) (*model.Developer, error) {
	var developer model.Developer
	if err := r.db.Where("username = ?", username).First(&developer).Error; err != nil {
		return nil, err
	}
	return &developer, nil
}

func (r *DeveloperRepository) FindByEmail(email string) (*model.Developer, error) {
	var developer model.Developer
	if err := r.db.Where("email = ?", email).First(&developer).Error; err != nil {
		return nil, err
	}
	return &developer, nil
}

func (r *DeveloperRepository) Create(developer *model.Developer) error {
	return r.db.Create(developer).Error
}

func (r *DeveloperRepository) UpdateByID(id uint, updates map[string]interface{}) error {
	var developer model.Developer
	if err := r.db.First(&developer, id).Error; err != nil {
		return err
	}
	return r.db.Model(&developer).Updates(updates).Error
}

func (r *DeveloperRepository) FieldExists(field DeveloperField, value string, excludeID *uint) (bool, error) {
	query := r.db.Model(&model.Developer{})
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DeveloperRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Developer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
