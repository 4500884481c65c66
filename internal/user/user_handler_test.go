package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/user"
	usererrors "go-leave/internal/user/errors"
	userMock "go-leave/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupUserRouter(userID string, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	})
	return r
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := userMock.NewMockService(ctrl)
		r := setupUserRouter("admin-1", domain.RoleAdmin)
		r.POST("/admin/users", user.NewHandler(svc).Create)

		req := user.CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123", Role: "EMPLOYEE"}
		svc.EXPECT().Create(gomock.Any(), req).Return(user.UserResponse{ID: "u-1", Role: "EMPLOYEE"}, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user"`)
		assert.Contains(t, w.Body.String(), "User created successfully")
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupUserRouter("admin-1", domain.RoleAdmin)
		r.POST("/admin/users", user.NewHandler(userMock.NewMockService(ctrl)).Create)

		body := `{"name":"A","email":"a@example.com","password":"secret123","role":"CEO"}`
		w := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewBufferString(body))
		httpReq.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := userMock.NewMockService(ctrl)
		r := setupUserRouter("admin-1", domain.RoleAdmin)
		r.POST("/admin/users", user.NewHandler(svc).Create)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserAlreadyExists)

		body := `{"name":"A","email":"a@example.com","password":"secret123","role":"HR"}`
		w := httptest.NewRecorder()
		httpReq := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewBufferString(body))
		httpReq.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := setupUserRouter("hr-1", domain.RoleHR)
	r.GET("/admin/users", user.NewHandler(svc).List)

	svc.EXPECT().
		List(gomock.Any(), domain.RoleHR, user.ListUsersQuery{}).
		Return([]user.UserResponse{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?page=2&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Users []user.UserResponse `json:"users"`
		Meta  struct {
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Users, 1)
	assert.Equal(t, "3", got.Users[0].ID)
	assert.Equal(t, 3, got.Meta.Total)
	assert.Equal(t, 2, got.Meta.TotalPages)
}

func TestHandler_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := setupUserRouter("admin-1", domain.RoleAdmin)
	r.PATCH("/admin/users/:id/role", user.NewHandler(svc).UpdateRole)

	svc.EXPECT().
		UpdateRole(gomock.Any(), "u-9", user.UpdateRoleRequest{Role: "HR"}).
		Return(user.UserResponse{}, usererrors.ErrAdminRoleImmutable)

	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPatch, "/admin/users/u-9/role", bytes.NewBufferString(`{"role":"HR"}`))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListTeam(t *testing.T) {
	t.Run("manager reading another team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupUserRouter("mgr-1", domain.RoleManager)
		r.GET("/manager/:managerId/team", user.NewHandler(userMock.NewMockService(ctrl)).ListTeam)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manager/mgr-2/team", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("hr reads any team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := userMock.NewMockService(ctrl)
		r := setupUserRouter("hr-1", domain.RoleHR)
		r.GET("/manager/:managerId/team", user.NewHandler(svc).ListTeam)

		svc.EXPECT().ListTeam(gomock.Any(), "mgr-2").Return([]user.UserResponse{{ID: "e-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manager/mgr-2/team", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"team"`)
	})
}

func TestHandler_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	r := setupUserRouter("u-1", domain.RoleEmployee)
	r.GET("/profile", user.NewHandler(svc).GetProfile)

	svc.EXPECT().GetProfile(gomock.Any(), "u-1").Return(user.UserResponse{ID: "u-1", Name: "Eve"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Eve")
}
