package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_approval.go -destination=mock/leave_approval_mock.go -package=mock
type ApprovalService interface {
	DecideAsManager(ctx context.Context, actor domain.Actor, managerID, leaveID string, req DecisionRequest) (LeaveResponse, error)
	DecideAsHR(ctx context.Context, actor domain.Actor, leaveID string, req DecisionRequest) (LeaveResponse, error)
	DecideAsAdmin(ctx context.Context, actor domain.Actor, leaveID string, req DecisionRequest) (LeaveResponse, error)
	ListTeamLeaves(ctx context.Context, actor domain.Actor, managerID string, q ListLeavesQuery) ([]LeaveResponse, error)
	ListForHR(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error)
	ListPendingForHR(ctx context.Context) ([]LeaveResponse, error)
	ListForAdmin(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error)
}

type approvalService struct {
	db          *sql.DB
	repo        Repository
	publisher   EventPublisher
	invalidator SummaryInvalidator
	now         func() time.Time
	logger      *zap.Logger
}

func NewApprovalService(
	db *sql.DB,
	repo Repository,
	publisher EventPublisher,
	invalidator SummaryInvalidator,
	logger ...*zap.Logger,
) ApprovalService {
	l := zap.L().Named("leave.approval")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.approval")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &approvalService{
		db:          db,
		repo:        repo,
		publisher:   publisher,
		invalidator: invalidator,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      l,
	}
}

// decider describes one approver role.
type decider struct {
	// next returns the status the leave moves to, or an error when the actor may not act on it.
	next func(l *Leave, decision domain.LeaveStatus) (domain.LeaveStatus, error)
	// hrComment selects hr_comment instead of manager_comment.
	hrComment bool
	// audit stamps the approver's last decision time in the same transaction.
	audit bool
}

func (s *approvalService) DecideAsManager(
	ctx context.Context,
	actor domain.Actor,
	managerID, leaveID string,
	req DecisionRequest,
) (LeaveResponse, error) {
	return s.decide(ctx, actor, leaveID, req, decider{
		audit: true,
		next: func(l *Leave, decision domain.LeaveStatus) (domain.LeaveStatus, error) {
			if managerID != actor.ID {
				return "", leaveerrors.ErrManagerMismatch
			}
			if l.UserID.String() == actor.ID || !l.Owner.ReportsTo(actor.ID) {
				return "", leaveerrors.ErrNotAuthorizedToDecide
			}
			if l.Status != domain.StatusPending {
				return "", leaveerrors.ErrNotAuthorizedToDecide
			}
			return decision, nil
		},
	})
}

func (s *approvalService) DecideAsHR(
	ctx context.Context,
	actor domain.Actor,
	leaveID string,
	req DecisionRequest,
) (LeaveResponse, error) {
	return s.decide(ctx, actor, leaveID, req, decider{
		hrComment: true,
		next: func(l *Leave, decision domain.LeaveStatus) (domain.LeaveStatus, error) {
			if l.Owner == nil || (l.Owner.Role != domain.RoleEmployee && l.Owner.Role != domain.RoleManager) {
				return "", leaveerrors.ErrNotAuthorizedToDecide
			}
			switch l.Status {
			case domain.StatusPendingHRApproval:
				return decision, nil
			case domain.StatusPendingHRAdminApproval:
				// HR hanya meneruskan, keputusan akhir tetap di admin
				if decision == domain.StatusApproved {
					return domain.StatusPendingAdminApproval, nil
				}
				return domain.StatusRejected, nil
			}
			return "", leaveerrors.ErrNotAuthorizedToDecide
		},
	})
}

func (s *approvalService) DecideAsAdmin(
	ctx context.Context,
	actor domain.Actor,
	leaveID string,
	req DecisionRequest,
) (LeaveResponse, error) {
	return s.decide(ctx, actor, leaveID, req, decider{
		next: func(l *Leave, decision domain.LeaveStatus) (domain.LeaveStatus, error) {
			if adminMayDecide(l) {
				return decision, nil
			}
			return "", leaveerrors.ErrNotAuthorizedToDecide
		},
	})
}

func adminMayDecide(l *Leave) bool {
	if l.Status == domain.StatusPendingAdminApproval {
		return true
	}
	if l.Owner == nil {
		return false
	}
	switch l.Owner.Role {
	case domain.RoleEmployee, domain.RoleManager:
		return l.Duration > AdminApprovalThresholdDays
	case domain.RoleHR, domain.RoleAdmin:
		return true
	}
	return false
}

func (s *approvalService) decide(
	ctx context.Context,
	actor domain.Actor,
	leaveID string,
	req DecisionRequest,
	d decider,
) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	decision, err := parseDecision(req.Status)
	if err != nil {
		return LeaveResponse{}, err
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return LeaveResponse{}, leaveerrors.ErrCommentRequired
	}
	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	deciderID, err := uuid.Parse(actor.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrNotAuthorizedToDecide
	}

	s.logger.Debug("leave decision requested",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("actor_id", actor.ID),
		zap.String("actor_role", string(actor.Role)),
		zap.String("decision", string(decision)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave decision begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.Status.Terminal() {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	next, err := d.next(l, decision)
	if err != nil {
		s.logger.Warn("leave decision not allowed",
			zap.String("request_id", rid),
			zap.String("leave_id", leaveID),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)),
			zap.String("status", string(l.Status)),
		)
		return LeaveResponse{}, err
	}

	now := s.now()
	previous := l.Status
	l.Status = next
	if d.hrComment {
		l.HRComment = &comment
	} else {
		l.ManagerComment = &comment
	}
	l.DecidedBy = &deciderID
	l.DecidedAt = &now

	if err := qtx.Update(ctx, l, previous); err != nil {
		if errors.Is(err, ErrLeaveChanged) {
			s.logger.Warn("leave decision lost to a concurrent change",
				zap.String("request_id", rid),
				zap.String("leave_id", leaveID),
			)
			return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
		}
		s.logger.Error("leave decision persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if d.audit {
		if err := qtx.TouchApproverAudit(ctx, actor.ID, decision, now); err != nil {
			s.logger.Error("leave decision approver audit failed",
				zap.String("leave_id", leaveID),
				zap.String("approver_id", actor.ID),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave decision commit failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decision success",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("actor_role", string(actor.Role)),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(next)),
	)

	s.afterDecision(ctx, actor, l, comment, rid)
	return mapToResponse(*l), nil
}

// afterDecision runs the post-commit side effects. Failures are logged only,
// the status change is already durable.
func (s *approvalService) afterDecision(ctx context.Context, actor domain.Actor, l *Leave, comment, rid string) {
	if err := s.invalidator.InvalidateLeaveSummary(ctx); err != nil {
		s.logger.Warn("leave summary cache invalidation failed", zap.Error(err))
	}

	// HR forwarding to admin is not a decision yet; the owner hears about the final one
	if !l.Status.Terminal() {
		s.logger.Debug("leave forwarded, no decided event",
			zap.String("request_id", rid),
			zap.String("leave_id", l.ID.String()),
			zap.String("status", string(l.Status)),
		)
		return
	}

	event := events.LeaveDecidedEvent{
		EventType:   events.LeaveDecidedEventType,
		LeaveID:     l.ID.String(),
		OwnerID:     l.UserID.String(),
		LeaveType:   string(l.Type),
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		Status:      string(l.Status),
		DecidedBy:   actor.ID,
		DeciderRole: string(actor.Role),
		Comment:     comment,
		RequestID:   rid,
		OccurredAt:  s.now(),
	}
	if l.Owner != nil {
		event.OwnerName = l.Owner.Name
		event.OwnerEmail = l.Owner.Email
	}
	if err := s.publisher.PublishLeaveDecided(ctx, event); err != nil {
		s.logger.Warn("leave decided event enqueue failed",
			zap.String("request_id", rid),
			zap.String("leave_id", event.LeaveID),
			zap.Error(err),
		)
	}
}

// parseDecision accepts "Approved"/"Rejected" in any case.
func parseDecision(v string) (domain.LeaveStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case string(domain.StatusApproved):
		return domain.StatusApproved, nil
	case string(domain.StatusRejected):
		return domain.StatusRejected, nil
	}
	return "", leaveerrors.ErrInvalidDecision
}

func (s *approvalService) ListTeamLeaves(
	ctx context.Context,
	actor domain.Actor,
	managerID string,
	q ListLeavesQuery,
) ([]LeaveResponse, error) {
	if actor.Role == domain.RoleManager && managerID != actor.ID {
		return nil, leaveerrors.ErrManagerMismatch
	}
	filter, err := queueFilter(q, []domain.Role{domain.RoleEmployee})
	if err != nil {
		return nil, err
	}
	filter.ManagerID = managerID
	return s.list(ctx, filter)
}

func (s *approvalService) ListForHR(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error) {
	filter, err := queueFilter(q, []domain.Role{domain.RoleEmployee, domain.RoleManager})
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *approvalService) ListPendingForHR(ctx context.Context) ([]LeaveResponse, error) {
	return s.list(ctx, ListFilter{
		OwnerRoles: []domain.Role{domain.RoleEmployee, domain.RoleManager},
		Statuses:   []domain.LeaveStatus{domain.StatusPendingHRApproval, domain.StatusPendingHRAdminApproval},
	})
}

func (s *approvalService) ListForAdmin(ctx context.Context, q ListLeavesQuery) ([]LeaveResponse, error) {
	var roles []domain.Role
	if q.Role != "" {
		role, err := domain.ParseRole(q.Role)
		if err != nil {
			return nil, leaveerrors.ErrInvalidRoleFilter
		}
		roles = []domain.Role{role}
	}
	filter, err := queueFilter(ListLeavesQuery{Status: q.Status}, roles)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

func (s *approvalService) list(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	leaves, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func queueFilter(q ListLeavesQuery, roles []domain.Role) (ListFilter, error) {
	filter := ListFilter{OwnerRoles: roles}
	if q.Status != "" {
		status, err := domain.ParseLeaveStatus(q.Status)
		if err != nil {
			return ListFilter{}, leaveerrors.ErrInvalidStatusFilter
		}
		filter.Statuses = []domain.LeaveStatus{status}
	}
	return filter, nil
}
