package service

import (
	"errors"
	"strings"
	"time"

	"github.com/ItzArrav/nothingroms-admin/internal/common"
	"github.com/ItzArrav/nothingroms-admin/internal/config"
	"github.com/ItzArrav/nothingroms-admin/internal/consts"
	"github.com/ItzArrav/nothingroms-admin/internal/dto"
	"github.com/ItzArrav/nothingroms-admin/internal/model"
	"github.com/ItzArrav/nothingroms-admin/internal/repository"
	"github.com/ItzArrav/nothingroms-admin/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterDeveloper 开发者自助注册。自注册账号永远是 developer 角色，
// 管理员只通过启动引导产生。
func (s *AppService) RegisterDeveloper(req dto.RegisterRequest) (string, *model.Developer, error) {
	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		return "", nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(req.Email); !ok {
		return "", nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return "", nil, common.NewValidationError(msg)
	}

	usernameTaken, err := s.repos.Developer.FieldExists(repository.DeveloperFieldUsername, req.Username, nil)
	if err != nil {
		return "", nil, common.NewInternalError("注册失败，请稍后重试")
	}
	emailTaken, err := s.repos.Developer.FieldExists(repository.DeveloperFieldEmail, req.Email, nil)
	if err != nil {
		return "", nil, common.NewInternalError("注册失败，请稍后重试")
	}
	if usernameTaken || emailTaken {
		return "", nil, common.NewConflictError("用户名或邮箱已被注册")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, common.NewInternalError("注册失败，请稍后重试")
	}

	developer := model.Developer{
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hashed),
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		TelegramHandle: req.TelegramHandle,
		GithubHandle:   req.GithubHandle,
		Role:           string(consts.RoleDeveloper),
	}
	if err := s.repos.Developer.Create(&developer); err != nil {
		// 并发注册撞唯一索引时落到这里
		return "", nil, common.NewConflictError("用户名或邮箱已被注册")
	}

	token, err := s.issueLoginToken(&developer)
	if err != nil {
		return "", nil, err
	}
	return token, &developer, nil
}

// LoginDeveloper 用户名或邮箱登录。两种失败对外统一为"用户名或密码错误"，
// 不泄露账号是否存在。
func (s *AppService) LoginDeveloper(req dto.LoginRequest) (string, *model.Developer, error) {
	developer, err := s.repos.Developer.FindByUsername(req.Username)
	if err != nil {
		// 管理员习惯用邮箱登录，找不到用户名且带 @ 时再按邮箱查一次
		if errors.Is(err, gorm.ErrRecordNotFound) && strings.Contains(req.Username, "@") {
			developer, err = s.repos.Developer.FindByEmail(req.Username)
		}
		if err != nil {
			return "", nil, common.NewUnauthorizedError("用户名或密码错误")
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(developer.Password), []byte(req.Password)) != nil {
		return "", nil, common.NewUnauthorizedError("用户名或密码错误")
	}

	token, err := s.issueLoginToken(developer)
	if err != nil {
		return "", nil, err
	}
	return token, developer, nil
}

// GetProfile 按 ID 取账号资料。
func (s *AppService) GetProfile(id uint) (*model.Developer, error) {
	developer, err := s.repos.Developer.FindByID(id)
	if err != nil {
		return nil, common.NewNotFoundError("账号不存在")
	}
	return developer, nil
}

// UpdateProfile 更新展示资料；nil 字段不动，密码修改走同样的强度校验。
func (s *AppService) UpdateProfile(id uint, req dto.ProfileUpdateRequest) (*model.Developer, error) {
	updates := make(map[string]interface{})

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, common.NewValidationError("展示名不能为空")
		}
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.TelegramHandle != nil {
		updates["telegram_handle"] = *req.TelegramHandle
	}
	if req.GithubHandle != nil {
		updates["github_handle"] = *req.GithubHandle
	}
	if req.Password != nil {
		if ok, msg := utils.ValidatePassword(*req.Password); !ok {
			return nil, common.NewValidationError(msg)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, common.NewInternalError("密码加密失败")
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.repos.Developer.UpdateByID(id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.NewNotFoundError("账号不存在")
			}
			return nil, common.NewInternalError("资料更新失败")
		}
	}

	return s.GetProfile(id)
}

func (s *AppService) issueLoginToken(developer *model.Developer) (string, error) {
	cfg := config.Get()
	token, err := utils.GenerateLoginToken(
		developer.ID,
		developer.Username,
		developer.Email,
		developer.Role,
		time.Hour*time.Duration(cfg.JWT.ExpirationHours),
	)
	if err != nil {
		return "", common.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}
