package leave

import (
	"net/http"
	"strconv"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   Service
	approvals ApprovalService
	logger    *zap.Logger
}

func NewHandler(service Service, approvals ApprovalService, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, approvals: approvals, logger: l}
}

func actorFrom(c *gin.Context) domain.Actor {
	id, role := middleware.Actor(c)
	return domain.Actor{ID: id, Role: role}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// writePage slices an in-memory result with ?page=&page_size=.
func writePage(c *gin.Context, message string, items []LeaveResponse) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	start, end := response.Paginate(len(items), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(items)), page, pageSize)
	response.Success(c, http.StatusOK, message, "leaves", items[start:end], &meta)
}

func (h *Handler) Submit(c *gin.Context) {
	actor := actorFrom(c)
	h.logger.Debug("http submit leave", zap.String("user_id", actor.ID))

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Leave request submitted", "leave", resp, nil)
}

func (h *Handler) ListOwn(c *gin.Context) {
	var q ListLeavesQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.service.ListOwn(c.Request.Context(), actorFrom(c), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, "Leave history fetched", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave fetched", "leave", resp, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	var req EditLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http edit leave validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Edit(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave request updated", "leave", resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave request cancelled", "", nil, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.TodayStatus(c.Request.Context(), actorFrom(c), time.Now())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Today's leave status", "today", resp, nil)
}

func (h *Handler) Balance(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 1970 {
		h.writeServiceError(c, apperror.InvalidField("Year"))
		return
	}

	resp, err := h.service.Balance(c.Request.Context(), actorFrom(c), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave balance fetched", "balance", resp, nil)
}

func (h *Handler) Calendar(c *gin.Context) {
	resp, err := h.service.Calendar(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave calendar fetched", "events", resp, nil)
}

func (h *Handler) bindDecision(c *gin.Context) (DecisionRequest, bool) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return DecisionRequest{}, false
	}
	return req, true
}

func (h *Handler) DecideAsHR(c *gin.Context) {
	req, ok := h.bindDecision(c)
	if !ok {
		return
	}
	resp, err := h.approvals.DecideAsHR(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave decision recorded", "leave", resp, nil)
}

func (h *Handler) DecideAsManager(c *gin.Context) {
	req, ok := h.bindDecision(c)
	if !ok {
		return
	}
	resp, err := h.approvals.DecideAsManager(c.Request.Context(), actorFrom(c), c.Param("managerId"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave decision recorded", "leave", resp, nil)
}

func (h *Handler) DecideAsAdmin(c *gin.Context) {
	req, ok := h.bindDecision(c)
	if !ok {
		return
	}
	resp, err := h.approvals.DecideAsAdmin(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Leave decision recorded", "leave", resp, nil)
}

func (h *Handler) ListTeam(c *gin.Context) {
	var q ListLeavesQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.approvals.ListTeamLeaves(c.Request.Context(), actorFrom(c), c.Param("managerId"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, "Team leaves fetched", resp)
}

func (h *Handler) ListForHR(c *gin.Context) {
	var q ListLeavesQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.approvals.ListForHR(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, "Leaves fetched", resp)
}

func (h *Handler) ListPendingForHR(c *gin.Context) {
	resp, err := h.approvals.ListPendingForHR(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, "Pending leaves fetched", resp)
}

func (h *Handler) ListForAdmin(c *gin.Context) {
	var q ListLeavesQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := h.approvals.ListForAdmin(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writePage(c, "Leaves fetched", resp)
}
