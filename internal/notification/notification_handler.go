package notification

import (
	"net/http"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("notification.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("notification request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	id, role := middleware.Actor(c)

	var q ListNotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if q.Locale == "" {
		q.Locale = c.GetHeader("Accept-Language")
	}

	items, total, err := h.service.List(c.Request.Context(), domain.Actor{ID: id, Role: role}, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, "Notifications retrieved", "notifications", items, &meta)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, role := middleware.Actor(c)

	if err := h.service.MarkRead(c.Request.Context(), domain.Actor{ID: id, Role: role}, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", "", nil, nil)
}
