package service

import (
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
)

type AppService struct {
	repos *repository.Repositories
}

func NewAppService(repos *repository.Repositories) *AppService {
	return &AppService{repos: repos}
}
