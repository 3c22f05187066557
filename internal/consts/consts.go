package consts

const (
	ApplicationName    = "NothingROMs Hub Server"
	ApplicationVersion = "v1.2.0"

	// TokenIssuer JWT 签发者标识
	TokenIssuer = "nothingroms-admin"
)

// Role 账号角色。原版在 User 和 Developer 两张表上各放了一个
// isAdmin 布尔值，这里统一为单一账号实体 + 角色枚举。
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
)
