package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-leave/internal/domain"
	"go-leave/internal/shared/contextutil"
	usererrors "go-leave/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const (
	TeamKeyPrefix = "users:team:"
	teamCacheTTL  = 10 * time.Minute
)

func TeamCacheKey(managerID string) string {
	return TeamKeyPrefix + managerID
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context, viewer domain.Role, q ListUsersQuery) ([]UserResponse, error)
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (UserResponse, error)
	AssignManager(ctx context.Context, req AssignManagerRequest) (UserResponse, error)
	UpdateBalances(ctx context.Context, id string, req UpdateBalancesRequest) (UserResponse, error)
	ListTeam(ctx context.Context, managerID string) ([]UserResponse, error)
	TeamMemberIDs(ctx context.Context, managerID string) ([]string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if role == domain.RoleAdmin {
		return UserResponse{}, usererrors.ErrRoleNotAssignable
	}

	var managerID *uuid.UUID
	if req.ManagerID != nil && *req.ManagerID != "" {
		if role != domain.RoleEmployee {
			return UserResponse{}, usererrors.ErrManagerOnlyForEmployee
		}
		mid, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		mgr, err := s.repo.FindByID(ctx, mid.String())
		if err != nil {
			if errors.Is(mapRepositoryError(err), usererrors.ErrUserNotFound) {
				return UserResponse{}, usererrors.ErrInvalidManager
			}
			return UserResponse{}, err
		}
		if mgr.Role != domain.RoleManager {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		managerID = &mid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Password:         string(hashed),
		Role:             role,
		ManagerID:        managerID,
		LeaveBalancePaid: DefaultPaidBalance,
		LeaveBalanceSick: DefaultSickBalance,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, usererrors.ErrUserAlreadyExists) {
			s.logger.Warn("create user duplicate email", zap.String("email", u.Email))
		} else {
			s.logger.Error("create user persist failed", zap.Error(err))
		}
		return UserResponse{}, mapped
	}

	if managerID != nil {
		s.invalidateTeam(ctx, managerID.String())
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(role)),
	)
	return mapToResponse(*u), nil
}

func (s *service) List(ctx context.Context, viewer domain.Role, q ListUsersQuery) ([]UserResponse, error) {
	filter := ListFilter{}
	if q.Role != "" {
		role, err := domain.ParseRole(q.Role)
		if err != nil {
			return nil, usererrors.ErrInvalidRole
		}
		filter.Roles = []domain.Role{role}
	}
	// HR tidak melihat akun admin
	if viewer != domain.RoleAdmin {
		filter.Roles = withoutAdmin(filter.Roles)
		if len(filter.Roles) == 0 {
			return []UserResponse{}, nil
		}
	}

	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(users), nil
}

func withoutAdmin(roles []domain.Role) []domain.Role {
	if len(roles) == 0 {
		return []domain.Role{domain.RoleEmployee, domain.RoleManager, domain.RoleHR}
	}
	out := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		if r != domain.RoleAdmin {
			out = append(out, r)
		}
	}
	return out
}

func (s *service) GetProfile(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	var columns []string
	if name := strings.TrimSpace(req.Name); name != "" {
		u.Name = name
		columns = append(columns, ColumnName)
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return UserResponse{}, usererrors.ErrInvalidPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hashed)
		columns = append(columns, ColumnPassword)
	}

	if err := s.repo.Update(ctx, u, columns); err != nil {
		s.logger.Error("update profile persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (UserResponse, error) {
	s.logger.Debug("update role requested", zap.String("user_id", id), zap.String("role", req.Role))

	newRole, err := domain.ParseRole(req.Role)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if newRole == domain.RoleAdmin {
		return UserResponse{}, usererrors.ErrRoleNotAssignable
	}
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update role begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if u.Role == domain.RoleAdmin {
		return UserResponse{}, usererrors.ErrAdminRoleImmutable
	}

	oldRole := u.Role
	var staleTeams []string

	// manager yang diturunkan kehilangan seluruh timnya
	if oldRole == domain.RoleManager && newRole != domain.RoleManager {
		if err := qtx.ClearManagerForReports(ctx, u.ID.String()); err != nil {
			s.logger.Error("update role clear reports failed", zap.String("user_id", id), zap.Error(err))
			return UserResponse{}, err
		}
		staleTeams = append(staleTeams, u.ID.String())
	}
	// only employees have a manager
	if newRole != domain.RoleEmployee && u.ManagerID != nil {
		staleTeams = append(staleTeams, u.ManagerID.String())
		u.ManagerID = nil
		u.Manager = nil
	}

	u.Role = newRole
	if err := qtx.Update(ctx, u, []string{ColumnRole, ColumnManagerID}); err != nil {
		s.logger.Error("update role persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update role commit failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	for _, managerID := range staleTeams {
		s.invalidateTeam(ctx, managerID)
	}

	s.logger.Info("update role success",
		zap.String("user_id", id),
		zap.String("from_role", string(oldRole)),
		zap.String("to_role", string(newRole)),
	)
	return mapToResponse(*u), nil
}

func (s *service) AssignManager(ctx context.Context, req AssignManagerRequest) (UserResponse, error) {
	if req.EmployeeID == req.ManagerID {
		return UserResponse{}, usererrors.ErrSelfManager
	}

	employee, err := s.repo.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if employee.Role != domain.RoleEmployee {
		return UserResponse{}, usererrors.ErrNotAnEmployee
	}

	manager, err := s.repo.FindByID(ctx, req.ManagerID)
	if err != nil {
		if errors.Is(mapRepositoryError(err), usererrors.ErrUserNotFound) {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		return UserResponse{}, err
	}
	if manager.Role != domain.RoleManager {
		return UserResponse{}, usererrors.ErrInvalidManager
	}

	var previous string
	if employee.ManagerID != nil {
		previous = employee.ManagerID.String()
	}

	employee.ManagerID = &manager.ID
	employee.Manager = nil
	if err := s.repo.Update(ctx, employee, []string{ColumnManagerID}); err != nil {
		s.logger.Error("assign manager persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("manager_id", req.ManagerID),
			zap.Error(err),
		)
		return UserResponse{}, err
	}
	employee.Manager = manager

	if previous != "" && previous != req.ManagerID {
		s.invalidateTeam(ctx, previous)
	}
	s.invalidateTeam(ctx, req.ManagerID)

	s.logger.Info("assign manager success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("manager_id", req.ManagerID),
	)
	return mapToResponse(*employee), nil
}

func (s *service) UpdateBalances(ctx context.Context, id string, req UpdateBalancesRequest) (UserResponse, error) {
	if req.LeaveBalancePaid != nil && req.LeaveBalancePaid.IsNegative() {
		return UserResponse{}, usererrors.ErrInvalidBalance
	}
	if req.LeaveBalanceSick != nil && req.LeaveBalanceSick.IsNegative() {
		return UserResponse{}, usererrors.ErrInvalidBalance
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	var columns []string
	if req.LeaveBalancePaid != nil {
		u.LeaveBalancePaid = *req.LeaveBalancePaid
		columns = append(columns, ColumnLeaveBalancePaid)
	}
	if req.LeaveBalanceSick != nil {
		u.LeaveBalanceSick = *req.LeaveBalanceSick
		columns = append(columns, ColumnLeaveBalanceSick)
	}

	if err := s.repo.Update(ctx, u, columns); err != nil {
		s.logger.Error("update balances persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) ListTeam(ctx context.Context, managerID string) ([]UserResponse, error) {
	users, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(users), nil
}

// TeamMemberIDs resolves the manager -> reports index. Results are cached in Redis
// and concurrent misses for the same manager share one database read.
func (s *service) TeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	cacheKey := TeamCacheKey(managerID)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var ids []string
			if jsonErr := json.Unmarshal([]byte(val), &ids); jsonErr == nil {
				return ids, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("team cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		users, err := s.repo.FindByManager(ctx, managerID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID.String())
		}

		if s.rdb != nil {
			if data, err := json.Marshal(ids); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, teamCacheTTL).Err(); err != nil {
					s.logger.Warn("team cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (s *service) invalidateTeam(ctx context.Context, managerID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := TeamCacheKey(managerID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate team cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(time.RFC3339)
	return &v
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                  u.ID.String(),
		Name:                u.Name,
		Email:               u.Email,
		Role:                string(u.Role),
		LeaveBalancePaid:    u.LeaveBalancePaid,
		LeaveBalanceSick:    u.LeaveBalanceSick,
		LastLogin:           formatTime(u.LastLogin),
		LastLeaveApprovedAt: formatTime(u.LastLeaveApprovedAt),
		LastLeaveRejectedAt: formatTime(u.LastLeaveRejectedAt),
		CreatedAt:           u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	if u.Manager != nil {
		resp.ManagerName = u.Manager.Name
	}
	return resp
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
