package service

import (
	"context"
	"errors"
	"time"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/utils"

	"gorm.io/gorm"
)

// TokenBlacklist 已注销令牌存储
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	userRepo  *repository.UserRepository
	tokens    *utils.TokenManager
	blacklist TokenBlacklist
}

// NewAuthService blacklist 为 nil 时注销不做持久化
func NewAuthService(userRepo *repository.UserRepository, tokens *utils.TokenManager, blacklist TokenBlacklist) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens, blacklist: blacklist}
}

// Login 邮箱密码登录，返回 token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		AuthToken: token,
		TokenType: "bearer",
		ExpiresIn: s.tokens.ExpireSeconds(),
	}, nil
}

// Logout 注销令牌，直到其自然过期前都不可再使用
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return ErrInvalidCredential
	}
	if s.blacklist == nil {
		return nil
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.blacklist.Revoke(ctx, token, ttl)
}
