package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/garment-bom/internal/bom/entity"
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginFailures = 5
	lockDuration     = 30 * time.Minute

	refreshTokenKeyPrefix = "token:refresh:"
)

// 认证错误
var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrAccountLocked      = errors.New("账号已锁定，请稍后再试")
	ErrInvalidToken       = errors.New("无效的令牌")
)

type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		rdb:      rdb,
		cfg:      cfg,
	}
}

// TokenPair 访问令牌与刷新令牌
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // access token有效期（秒）
}

// Login 用户名密码登录
// 连续失败maxLoginFailures次后锁定lockDuration，锁定期间直接拒绝
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if user.IsLocked {
		if user.LockedUntil != nil && time.Now().Before(*user.LockedUntil) {
			return nil, nil, ErrAccountLocked
		}
		// 锁定期已过，自动解锁
		user.IsLocked = false
		user.LoginFailCount = 0
		user.LockedUntil = nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if ferr := s.recordLoginFailure(ctx, user); ferr != nil {
			return nil, nil, ferr
		}
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LoginFailCount = 0
	user.LastLoginAt = &now
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("更新登录状态失败: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) recordLoginFailure(ctx context.Context, user *entity.User) error {
	user.LoginFailCount++
	if user.LoginFailCount >= maxLoginFailures {
		until := time.Now().Add(lockDuration)
		user.IsLocked = true
		user.LockedUntil = &until
	}
	return s.userRepo.Save(ctx, user)
}

// Refresh 用刷新令牌换取新令牌对，旧刷新令牌作废（轮换）
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	key := refreshTokenKeyPrefix + claims.ID
	userIDStr, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("查询刷新令牌失败: %w", err)
	}

	var userID uint
	if _, err := fmt.Sscanf(userIDStr, "%d", &userID); err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 轮换：旧令牌立即作废
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("作废旧刷新令牌失败: %w", err)
	}
	return s.issueTokenPair(ctx, user)
}

// Logout 注销刷新令牌
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return ErrInvalidToken
	}
	return s.rdb.Del(ctx, refreshTokenKeyPrefix+claims.ID).Err()
}

// Profile 获取当前用户
func (s *AuthService) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("用户 #%d 不存在: %w", userID, err)
	}
	return user, nil
}

// ChangePassword 修改密码（校验旧密码）
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("用户 #%d 不存在: %w", userID, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败: %w", err)
	}
	user.Password = string(hashed)
	return s.userRepo.Save(ctx, user)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()
	accessExpire := s.cfg.JWT.AccessTokenExpire

	accessClaims := jwt.MapClaims{
		"uid":      fmt.Sprint(user.ID),
		"name":     user.Name,
		"username": user.Username,
		"iss":      s.cfg.JWT.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(accessExpire).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("签发访问令牌失败: %w", err)
	}

	jti := uuid.New().String()
	refreshClaims := jwt.RegisteredClaims{
		ID:        jti,
		Subject:   fmt.Sprint(user.ID),
		Issuer:    s.cfg.JWT.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.RefreshTokenExpire)),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("签发刷新令牌失败: %w", err)
	}

	// 刷新令牌在Redis登记，注销/轮换时删除即作废
	key := refreshTokenKeyPrefix + jti
	if err := s.rdb.Set(ctx, key, fmt.Sprint(user.ID), s.cfg.JWT.RefreshTokenExpire).Err(); err != nil {
		return nil, fmt.Errorf("登记刷新令牌失败: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessExpire.Seconds()),
	}, nil
}
