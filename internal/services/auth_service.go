// internal/services/auth_service.go - 单用户登录
package services

import (
	"crypto/subtle"
	"fmt"

	"links-backend/internal/config"
	"links-backend/internal/utils"
)

type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login 校验访问密码并签发令牌。
// 这是单用户应用，没有账号体系
func (s *AuthService) Login(password string) (string, error) {
	if s.cfg.Auth.Password == "" {
		return "", fmt.Errorf("服务端未配置访问密码")
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Auth.Password)) != 1 {
		return "", fmt.Errorf("密码错误")
	}

	token, err := utils.GenerateToken(s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return "", fmt.Errorf("生成令牌失败: %w", err)
	}
	return token, nil
}
