package auth

import (
	"github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// CasbinService wraps the enforcer gating the authenticated API surface.
// Policies live in a CSV file next to the model; the gateway keeps no
// relational store of its own.
type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(modelPath, policyPath string) (*CasbinService, error) {
	adp := fileadapter.NewAdapter(policyPath)
	E, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := E.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E}, nil
}
