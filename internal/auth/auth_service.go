package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
}

type service struct {
	repo     Repository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, secret string, tokenTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return "", AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", user.ID.String()))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(user.Role)
	if err != nil {
		s.logger.Error("login user has unknown role",
			zap.String("user_id", user.ID.String()),
			zap.String("role", user.Role),
		)
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user.ID.String(), role, s.tokenTTL)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	// latecomer reports read last_login, a failed write must not block the login
	if err := s.repo.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.logger.Warn("login touch last_login failed", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))
	return accessToken, toResponse(user, role), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	role, err := domain.ParseRole(u.Role)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	resp := toResponse(u, role)
	return &resp, nil
}

func (s *service) generateToken(userID string, role domain.Role, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     s.now().Unix(),
		"exp":     s.now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func toResponse(u *User, role domain.Role) AuthResponse {
	resp := AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(role),
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}
