package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/auth"
	autherrors "go-leave/internal/auth/errors"
	authMock "go-leave/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	managerID := uuid.New()
	mockUser := &auth.User{
		ID:        userID,
		Name:      "Jane",
		Email:     "jane@example.com",
		Password:  string(pw),
		Role:      "EMPLOYEE",
		ManagerID: &managerID,
	}

	t.Run("success issues token with id and role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(mockUser, nil)
		mockRepo.EXPECT().TouchLastLogin(ctx, userID, gomock.Any()).Return(nil)

		token, resp, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.Equal(t, mockUser.Email, resp.Email)
		assert.Equal(t, "EMPLOYEE", resp.Role)
		assert.Equal(t, managerID.String(), *resp.ManagerID)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, userID.String(), claims["user_id"])
		assert.Equal(t, "EMPLOYEE", claims["role"])
	})

	t.Run("legacy USER role is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		legacy := *mockUser
		legacy.Role = "user"
		mockRepo.EXPECT().GetByEmail(ctx, legacy.Email).Return(&legacy, nil)
		mockRepo.EXPECT().TouchLastLogin(ctx, userID, gomock.Any()).Return(nil)

		_, resp, err := service.Login(ctx, legacy.Email, password)

		assert.NoError(t, err)
		assert.Equal(t, "EMPLOYEE", resp.Role)
	})

	t.Run("last_login failure does not block login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(mockUser, nil)
		mockRepo.EXPECT().TouchLastLogin(ctx, userID, gomock.Any()).Return(errors.New("db down"))

		token, _, err := service.Login(ctx, mockUser.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		mockRepo.EXPECT().GetByEmail(ctx, mockUser.Email).Return(mockUser, nil)

		_, _, err := service.Login(ctx, mockUser.Email, "wrongpass")
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		mockRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := service.Login(ctx, "nobody@example.com", password)
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})

	t.Run("unrecognized stored role is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		odd := *mockUser
		odd.Role = "SUPERVISOR"
		mockRepo.EXPECT().GetByEmail(ctx, odd.Email).Return(&odd, nil)

		_, _, err := service.Login(ctx, odd.Email, password)
		assert.Equal(t, autherrors.ErrInvalidCredentials, err)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := auth.NewService(authMock.NewMockRepository(ctrl), testSecret, time.Hour)

		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.Equal(t, autherrors.ErrInvalidUserID, err)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetMe(ctx, id.String())
		assert.Equal(t, autherrors.ErrUserNotFound, err)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := authMock.NewMockRepository(ctrl)
		service := auth.NewService(mockRepo, testSecret, time.Hour)

		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&auth.User{ID: id, Email: "hr@example.com", Role: "HR"}, nil)

		resp, err := service.GetMe(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, "HR", resp.Role)
	})
}
