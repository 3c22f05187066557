package repository

import (
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *SubmissionRepository) UpdateByID(id uint, updates map[string]interface{}) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&submission).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) ListAll() ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.db.Order("submitted_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListByDeveloper(developerID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.db.Where("developer_id = ?", developerID).Order("submitted_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) CountPending() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Submission{}).
		Where("status = ?", consts.SubmissionStatusPending).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
