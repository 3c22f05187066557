package repository

import "github.com/ItzArrav/nothingroms-admin/internal/model"

type SubmissionStore interface {
	FindByID(id uint) (*model.Submission, error)
	Create(submission *model.Submission) error
	UpdateByID(id uint, updates map[string]interface{}) (*model.Submission, error)
	ListAll() ([]model.Submission, error)
	ListByDeveloper(developerID uint) ([]model.Submission, error)
	CountPending() (int64, error)
}
