package handler

import (
	"testing"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
	"github.com/ItzArrav/nothingroms-admin/internal/service"
	"github.com/ItzArrav/nothingroms-admin/internal/testutils"

	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	config.InitConfig("")

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewDeveloperRepository(gdb),
		repository.NewRomRepository(gdb),
		repository.NewSubmissionRepository(gdb),
	)
	return NewHandler(service.NewAppService(repos)), gdb
}
