package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/domain"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req SubmitLeaveRequest) (LeaveResponse, error)
	Edit(ctx context.Context, actor domain.Actor, id string, req EditLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) error
	ListOwn(ctx context.Context, actor domain.Actor, q ListLeavesQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	TodayStatus(ctx context.Context, actor domain.Actor, today time.Time) (TodayStatusResponse, error)
	Balance(ctx context.Context, actor domain.Actor, year int) (BalanceResponse, error)
	Calendar(ctx context.Context, actor domain.Actor) ([]CalendarEvent, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("user_id", actor.ID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	userID, err := uuid.Parse(actor.ID)
	if err != nil {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}
	if strings.TrimSpace(req.Reason) == "" {
		return LeaveResponse{}, leaveerrors.ErrReasonRequired
	}
	leaveType, startDate, endDate, err := validateLeaveInput(req.Type, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("submit leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status, duration, err := s.evaluate(ctx, qtx, actor, startDate, endDate, nil)
	if err != nil {
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Duration:  duration,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    status,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", actor.ID),
		zap.String("status", string(status)),
		zap.Int("duration", duration),
	)
	return mapToResponse(*l), nil
}

// evaluate runs the overlap check and the approval policy for a candidate window.
func (s *service) evaluate(
	ctx context.Context,
	qtx Repository,
	actor domain.Actor,
	startDate, endDate time.Time,
	excludeID *string,
) (domain.LeaveStatus, int, error) {
	overlap, err := qtx.HasOverlappingPeriod(ctx, actor.ID, startDate, endDate, excludeID)
	if err != nil {
		s.logger.Error("leave overlap check failed", zap.String("user_id", actor.ID), zap.Error(err))
		return "", 0, err
	}
	if overlap {
		s.logger.Warn("leave overlap detected",
			zap.String("user_id", actor.ID),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate),
		)
		return "", 0, leaveerrors.ErrLeaveOverlap
	}

	// whole calendar month of the start date, not just the requested window: overlap with
	// any non-rejected leave was refused above, so a window-only count would always be 0
	monthStart, monthEnd := monthBounds(startDate)
	approved, err := qtx.CountApprovedInRange(ctx, actor.ID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("leave approved count failed", zap.String("user_id", actor.ID), zap.Error(err))
		return "", 0, err
	}

	duration := durationDays(startDate, endDate)
	return DecideInitialStatus(actor.Role, duration, approved), duration, nil
}

func (s *service) Edit(ctx context.Context, actor domain.Actor, id string, req EditLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("edit leave requested", zap.String("leave_id", id), zap.String("user_id", actor.ID))

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("edit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findOwnMutable(ctx, qtx, actor, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	leaveType, startDate, endDate, err := validateLeaveInput(req.Type, req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	status, duration, err := s.evaluate(ctx, qtx, actor, startDate, endDate, &id)
	if err != nil {
		return LeaveResponse{}, err
	}

	previous := l.Status
	l.Type = leaveType
	l.StartDate = startDate
	l.EndDate = endDate
	l.Duration = duration
	if reason := strings.TrimSpace(req.Reason); reason != "" {
		l.Reason = reason
	}
	// status selalu dihitung ulang, keputusan sebelumnya tidak berlaku lagi
	l.Status = status
	l.ManagerComment = nil
	l.HRComment = nil
	l.DecidedBy = nil
	l.DecidedAt = nil

	if err := qtx.Update(ctx, l, previous); err != nil {
		if errors.Is(err, ErrLeaveChanged) {
			s.logger.Warn("edit leave lost to a concurrent change", zap.String("leave_id", id))
			return LeaveResponse{}, leaveerrors.ErrLeaveFinalized
		}
		s.logger.Error("edit leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("edit leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("edit leave success",
		zap.String("leave_id", id),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(status)),
	)
	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := s.findOwnMutable(ctx, qtx, actor, id); err != nil {
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("cancel leave delete failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", id), zap.String("user_id", actor.ID))
	return nil
}

// findOwnMutable loads a leave the actor owns and may still change.
func (s *service) findOwnMutable(ctx context.Context, repo Repository, actor domain.Actor, id string) (*Leave, error) {
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if l.UserID.String() != actor.ID {
		s.logger.Warn("leave ownership check failed",
			zap.String("leave_id", id),
			zap.String("owner_id", l.UserID.String()),
			zap.String("user_id", actor.ID),
		)
		return nil, leaveerrors.ErrNotLeaveOwner
	}
	if l.Status.Terminal() {
		return nil, leaveerrors.ErrLeaveFinalized
	}
	return l, nil
}

func (s *service) ListOwn(ctx context.Context, actor domain.Actor, q ListLeavesQuery) ([]LeaveResponse, error) {
	filter := ListFilter{UserIDs: []string{actor.ID}}
	if q.Status != "" {
		status, err := domain.ParseLeaveStatus(q.Status)
		if err != nil {
			return nil, leaveerrors.ErrInvalidStatusFilter
		}
		filter.Statuses = []domain.LeaveStatus{status}
	}

	leaves, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.UserID.String() != actor.ID {
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}
	return mapToResponse(*l), nil
}

func (s *service) TodayStatus(ctx context.Context, actor domain.Actor, today time.Time) (TodayStatusResponse, error) {
	day := truncateDate(today)
	leaves, err := s.repo.List(ctx, ListFilter{
		UserIDs:  []string{actor.ID},
		Statuses: []domain.LeaveStatus{domain.StatusApproved},
		ActiveOn: &day,
	})
	if err != nil {
		return TodayStatusResponse{}, err
	}
	if len(leaves) == 0 {
		return TodayStatusResponse{OnLeaveToday: false}, nil
	}
	resp := mapToResponse(leaves[0])
	return TodayStatusResponse{OnLeaveToday: true, Leave: &resp}, nil
}

// Balance derives used days from approved leaves starting in year.
// SICK draws on the sick allotment, everything else on the paid one.
func (s *service) Balance(ctx context.Context, actor domain.Actor, year int) (BalanceResponse, error) {
	owner, err := s.repo.FindOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, apperror.ErrNotFound
		}
		return BalanceResponse{}, err
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	leaves, err := s.repo.List(ctx, ListFilter{
		UserIDs:   []string{actor.ID},
		Statuses:  []domain.LeaveStatus{domain.StatusApproved},
		StartFrom: &from,
		StartTo:   &to,
	})
	if err != nil {
		return BalanceResponse{}, err
	}

	usedPaid, usedSick := decimal.Zero, decimal.Zero
	for _, l := range leaves {
		days := decimal.NewFromInt(int64(l.Duration))
		if l.Type == domain.LeaveTypeSick {
			usedSick = usedSick.Add(days)
		} else {
			usedPaid = usedPaid.Add(days)
		}
	}

	return BalanceResponse{
		Year: year,
		Paid: balanceLine(owner.LeaveBalancePaid, usedPaid),
		Sick: balanceLine(owner.LeaveBalanceSick, usedSick),
	}, nil
}

func balanceLine(allotted, used decimal.Decimal) BalanceLine {
	return BalanceLine{Allotted: allotted, Used: used, Remaining: allotted.Sub(used)}
}

func (s *service) Calendar(ctx context.Context, actor domain.Actor) ([]CalendarEvent, error) {
	leaves, err := s.repo.List(ctx, ListFilter{UserIDs: []string{actor.ID}})
	if err != nil {
		return nil, err
	}
	out := make([]CalendarEvent, len(leaves))
	for i, l := range leaves {
		out[i] = toCalendarEvent(l)
	}
	return out, nil
}

func toCalendarEvent(l Leave) CalendarEvent {
	color := "orange"
	switch l.Status {
	case domain.StatusApproved:
		color = "green"
	case domain.StatusRejected:
		color = "red"
	}
	return CalendarEvent{
		ID:     l.ID.String(),
		UserID: l.UserID.String(),
		Title:  fmt.Sprintf("%s Leave (%s)", l.Type, l.Status),
		Start:  l.StartDate.Format(dateLayout),
		End:    l.EndDate.Format(dateLayout),
		Status: string(l.Status),
		Color:  color,
	}
}

func validateLeaveInput(rawType, rawStart, rawEnd string) (domain.LeaveType, time.Time, time.Time, error) {
	leaveType, err := domain.ParseLeaveType(rawType)
	if err != nil {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, err := parseDate(rawStart)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(rawEnd)
	if err != nil {
		return "", time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return "", time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return leaveType, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// durationDays counts calendar days inclusively.
func durationDays(start, end time.Time) int {
	return int(truncateDate(end).Sub(truncateDate(start)).Hours()/24) + 1
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID.String(),
		UserID:         l.UserID.String(),
		Type:           string(l.Type),
		StartDate:      l.StartDate.Format(dateLayout),
		EndDate:        l.EndDate.Format(dateLayout),
		Duration:       l.Duration,
		Reason:         l.Reason,
		Status:         string(l.Status),
		ManagerComment: l.ManagerComment,
		HRComment:      l.HRComment,
		DecidedAt:      formatTime(l.DecidedAt),
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.Owner != nil {
		resp.UserName = l.Owner.Name
		resp.UserRole = string(l.Owner.Role)
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
