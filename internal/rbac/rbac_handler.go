package rbac

import (
	"net/http"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed", zap.String("path", c.FullPath()), zap.Error(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Permission checked", "result", domain.EnforceResponse{Allowed: allowed}, nil)
}

// MyPermissions lists what the caller's role may do.
func (h *Handler) MyPermissions(c *gin.Context) {
	_, role := middleware.Actor(c)
	if role == "" {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.PermissionsForRole(role)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Permissions fetched", "permissions", perms, nil)
}
