package consts

// RomTypes 允许的 ROM 家族。前端下拉框与校验共用这一份列表。
var RomTypes = []string{
	"LineageOS",
	"PixelOS",
	"crDroid",
	"ArrowOS",
	"EvolutionX",
	"Custom",
}

const (
	BuildStatusStable = "stable"
	BuildStatusBeta   = "beta"
)

// FilterAll 筛选接口中"不限制该字段"的哨兵值。
const FilterAll = "all"

// 提交审核状态机：pending 为唯一非终态。
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// FeaturedRomCount 首页精选 ROM 数量上限。
const FeaturedRomCount = 3

// MaxRomUploadSize ROM 压缩包上传上限 (2 GiB)。
const MaxRomUploadSize = 2 * 1024 * 1024 * 1024

// IsValidRomType 检查 ROM 家族是否在允许列表内。
func IsValidRomType(romType string) bool {
	for _, t := range RomTypes {
		if t == romType {
			return true
		}
	}
	return false
}

// IsValidBuildStatus 检查构建状态取值。
func IsValidBuildStatus(status string) bool {
	return status == BuildStatusStable || status == BuildStatusBeta
}
