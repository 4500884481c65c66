package rbac

import (
	"sync"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role domain.Role) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads grants and inherits into enforcer.
func NewService(enforcer *casbin.Enforcer, grants []Grant, inherits map[domain.Role]domain.Role, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.load(grants, inherits); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) load(grants []Grant, inherits map[domain.Role]domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for child, parent := range inherits {
		if _, err := s.enforcer.AddGroupingPolicy(string(child), string(parent)); err != nil {
			return err
		}
	}
	for _, g := range grants {
		if _, err := s.enforcer.AddPolicy(string(g.Role), g.Resource, g.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("grants", len(grants)),
		zap.Int("inherits", len(inherits)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		s.logger.Warn("rbac enforce unknown role", zap.String("role", req.Role))
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(string(role), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", string(role)),
			zap.Stringer("permission", req.Permission()),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(role)),
		zap.Stringer("permission", req.Permission()),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role domain.Role) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(string(role))
	if err != nil {
		return nil, err
	}

	out := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return out, nil
}
