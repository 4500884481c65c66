package notification_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/notification"
	notificationerrors "go-leave/internal/notification/errors"
	notificationMock "go-leave/internal/notification/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(userID string, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	})
	return r
}

func TestHandler_List(t *testing.T) {
	actor := domain.Actor{ID: "user-1", Role: domain.RoleEmployee}

	t.Run("accept-language used when lang is absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationMock.NewMockService(ctrl)
		r := setupRouter(actor.ID, actor.Role)
		r.GET("/notifications", notification.NewHandler(svc).List)

		svc.EXPECT().
			List(gomock.Any(), actor, notification.ListNotificationsQuery{UnreadOnly: true, Page: 1, PageSize: 10, Locale: "id"}).
			Return([]notification.NotificationResponse{{ID: "n-1", Title: "Cuti disetujui"}}, int64(11), nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true&page=1&page_size=10", nil)
		req.Header.Set("Accept-Language", "id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got struct {
			Notifications []notification.NotificationResponse `json:"notifications"`
			Meta          struct {
				Total      int `json:"total"`
				TotalPages int `json:"totalPages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got.Notifications, 1)
		assert.Equal(t, 11, got.Meta.Total)
		assert.Equal(t, 2, got.Meta.TotalPages)
	})

	t.Run("bad unread flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupRouter(actor.ID, actor.Role)
		r.GET("/notifications", notification.NewHandler(notificationMock.NewMockService(ctrl)).List)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications?unread=maybe", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_MarkRead(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationMock.NewMockService(ctrl)
		r := setupRouter("user-1", domain.RoleEmployee)
		r.PATCH("/notifications/:id/read", notification.NewHandler(svc).MarkRead)

		svc.EXPECT().MarkRead(gomock.Any(), gomock.Any(), "abc").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/notifications/abc/read", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Notification marked as read")
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := notificationMock.NewMockService(ctrl)
		r := setupRouter("user-1", domain.RoleEmployee)
		r.PATCH("/notifications/:id/read", notification.NewHandler(svc).MarkRead)

		svc.EXPECT().MarkRead(gomock.Any(), gomock.Any(), "abc").Return(notificationerrors.ErrNotificationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/notifications/abc/read", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
