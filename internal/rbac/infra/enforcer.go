package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// NewEnforcer builds an in-memory enforcer from model text; policies are added by the caller.
func NewEnforcer(modelText string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
