package service

import (
	"runtime"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
)

type SystemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStats struct {
	RomCount          int64      `json:"romCount"`
	ApprovedRomCount  int64      `json:"approvedRomCount"`
	DeveloperCount    int64      `json:"developerCount"`
	PendingSubmission int64      `json:"pendingSubmissions"`
	SystemInfo        SystemInfo `json:"systemInfo"`
}

// GetServerStatsForAdmin 获取后台仪表盘统计数据。
func (s *AppService) GetServerStatsForAdmin() (*ServerStats, error) {
	romCount, err := s.repos.Rom.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计失败")
	}
	approvedCount, err := s.repos.Rom.CountApproved()
	if err != nil {
		return nil, common.NewInternalError("统计失败")
	}
	developerCount, err := s.repos.Developer.CountAll()
	if err != nil {
		return nil, common.NewInternalError("统计失败")
	}
	pendingCount, err := s.repos.Submission.CountPending()
	if err != nil {
		return nil, common.NewInternalError("统计失败")
	}

	return &ServerStats{
		RomCount:          romCount,
		ApprovedRomCount:  approvedCount,
		DeveloperCount:    developerCount,
		PendingSubmission: pendingCount,
		SystemInfo: SystemInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
