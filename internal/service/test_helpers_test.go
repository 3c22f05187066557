package service

import (
	"testing"

	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
	"github.com/ItzArrav/nothingroms-admin/internal/testutils"

	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*AppService, *gorm.DB) {
	t.Helper()
	config.InitConfig("")

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewDeveloperRepository(gdb),
		repository.NewRomRepository(gdb),
		repository.NewSubmissionRepository(gdb),
	)
	return NewAppService(repos), gdb
}
