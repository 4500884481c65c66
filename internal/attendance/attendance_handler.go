package attendance

import (
	"net/http"
	"strconv"
	"time"

	attendanceerrors "go-leave/internal/attendance/errors"
	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func actorFrom(c *gin.Context) domain.Actor {
	id, role := middleware.Actor(c)
	return domain.Actor{ID: id, Role: role}
}

// queryDate reads ?date=, defaulting to today.
func queryDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return truncateDate(time.Now()), nil
	}
	return ParseDate(raw)
}

func (h *Handler) Daily(c *gin.Context) {
	day, err := queryDate(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.DailyAttendance(c.Request.Context(), actorFrom(c), day)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Daily attendance fetched", "attendance", resp, nil)
}

func (h *Handler) LateComers(c *gin.Context) {
	day, err := queryDate(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.LateComers(c.Request.Context(), actorFrom(c), day)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Latecomers fetched", "latecomers", resp, nil)
}

func (h *Handler) TeamDashboard(c *gin.Context) {
	resp, err := h.service.TeamDashboard(c.Request.Context(), actorFrom(c), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Team dashboard fetched", "dashboard", resp, nil)
}

func (h *Handler) bindRange(c *gin.Context) (DateRange, bool) {
	var q DateRangeQuery
	_ = c.ShouldBindQuery(&q)

	r, err := ParseDateRange(q.From, q.To)
	if err != nil {
		h.writeServiceError(c, err)
		return DateRange{}, false
	}
	return r, true
}

func (h *Handler) LeaveSummary(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}

	resp, err := h.service.LeaveDaySummary(c.Request.Context(), actorFrom(c), r)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave summary fetched", "summary", resp, nil)
}

func (h *Handler) ExportLeaveSummary(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}

	data, err := h.service.ExportLeaveDaySummary(c.Request.Context(), actorFrom(c), r)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="leave-summary.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) MonthlyTrends(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		h.writeServiceError(c, attendanceerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.MonthlyTrends(c.Request.Context(), actorFrom(c), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Monthly trends fetched", "trends", resp, nil)
}
