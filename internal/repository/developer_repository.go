package repository

import "github.com/ItzArrav/nothingroms-admin/internal/model"

type DeveloperField string

const (
	DeveloperFieldUsername DeveloperField = "username"
	DeveloperFieldEmail    DeveloperField = "email"
)

type DeveloperStore interface {
	FindByID(id uint) (*model.Developer, error)
	FindByUsername(username string) (*model.Developer, error)
	FindByEmail(email string) (*model.Developer, error)
	Create(developer *model.Developer) error
	UpdateByID(id uint, updates map[string]interface{}) error
	FieldExists(field DeveloperField, value string, excludeID *uint) (bool, error)
	CountAll() (int64, error)
}
