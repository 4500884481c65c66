package attendance_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/attendance"
	attendanceMock "go-leave/internal/attendance/mock"
	"go-leave/internal/domain"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
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

func TestHandler_Daily(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		r := setupRouter("hr-1", domain.RoleHR)
		r.GET("/attendance/daily", attendance.NewHandler(svc).Daily)

		svc.EXPECT().
			DailyAttendance(gomock.Any(), domain.Actor{ID: "hr-1", Role: domain.RoleHR}, day(2025, 6, 2)).
			Return([]attendance.DailyAttendanceEntry{{UserID: "u-1", Status: attendance.StatusAbsent}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance/daily?date=2025-06-02", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Absent"`)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupRouter("hr-1", domain.RoleHR)
		r.GET("/attendance/daily", attendance.NewHandler(attendanceMock.NewMockService(ctrl)).Daily)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance/daily?date=June", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_LeaveSummary(t *testing.T) {
	t.Run("half open range rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupRouter("a-1", domain.RoleAdmin)
		r.GET("/analytics/leaves", attendance.NewHandler(attendanceMock.NewMockService(ctrl)).LeaveSummary)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/leaves?from=2025-01-01", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("summary by role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		r := setupRouter("a-1", domain.RoleAdmin)
		r.GET("/analytics/leaves", attendance.NewHandler(svc).LeaveSummary)

		svc.EXPECT().
			LeaveDaySummary(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(attendance.LeaveSummary{"EMPLOYEE": 9}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/leaves?from=2025-01-01&to=2025-12-31", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"summary":{"EMPLOYEE":9}`)
	})
}

func TestHandler_ExportLeaveSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	r := setupRouter("a-1", domain.RoleAdmin)
	r.GET("/analytics/leaves/export", attendance.NewHandler(svc).ExportLeaveSummary)

	svc.EXPECT().ExportLeaveDaySummary(gomock.Any(), gomock.Any(), attendance.DateRange{}).Return([]byte("xlsx"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/leaves/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leave-summary.xlsx")
	assert.Equal(t, "xlsx", w.Body.String())
}

func TestHandler_MonthlyTrends_BadYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := setupRouter("a-1", domain.RoleAdmin)
	r.GET("/analytics/trends", attendance.NewHandler(attendanceMock.NewMockService(ctrl)).MonthlyTrends)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analytics/trends?year=twenty", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
