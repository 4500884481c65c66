package user

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", "user", resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}
	_, role := middleware.Actor(c)

	resp, err := h.service.List(c.Request.Context(), role, q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	start, end := response.Paginate(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, "Users fetched", "users", resp[start:end], &meta)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User role updated", "user", resp, nil)
}

func (h *Handler) AssignManager(c *gin.Context) {
	var req AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AssignManager(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee assigned to manager", "user", resp, nil)
}

func (h *Handler) UpdateBalances(c *gin.Context) {
	var req UpdateBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.ErrInvalidInput)
		return
	}

	resp, err := h.service.UpdateBalances(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave balances updated", "user", resp, nil)
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, _ := middleware.Actor(c)

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile fetched", "user", resp, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.Actor(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", "user", resp, nil)
}

// ListTeam serves /manager/:managerId/team. A manager only sees their own team.
func (h *Handler) ListTeam(c *gin.Context) {
	userID, role := middleware.Actor(c)
	managerID := c.Param("managerId")
	if role == domain.RoleManager && managerID != userID {
		h.writeError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.ListTeam(c.Request.Context(), managerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Team fetched", "team", resp, nil)
}
