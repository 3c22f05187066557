package repository

import (
	"gorm.io/gorm"
)

type Repositories struct {
	Developer  DeveloperStore
	Rom        RomStore
	Submission SubmissionStore
}

func NewDeveloperRepository(db *gorm.DB) DeveloperStore {
	return &DeveloperRepository{db: db}
}

func NewRomRepository(db *gorm.DB) RomStore {
	return &RomRepository{db: db}
}

func NewSubmissionRepository(db *gorm.DB) SubmissionStore {
	return &SubmissionRepository{db: db}
}

func NewRepositories(developer DeveloperStore, rom RomStore, submission SubmissionStore) *Repositories {
	return &Repositories{
		Developer:  developer,
		Rom:        rom,
		Submission: submission,
	}
}
