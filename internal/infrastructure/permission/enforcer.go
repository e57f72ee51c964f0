// Package permission gates endpoints on the capability flags of the
// calling credential. Each flag grants a role and each role is allowed a
// fixed set of (resource, action) pairs.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/lrsproject/lrs/internal/domain/credential"
	"github.com/lrsproject/lrs/internal/shared/logger"
)

const (
	RoleReader = "reader"
	RoleWriter = "writer"

	ResourceStatements = "statements"
	ResourceUsers      = "users"

	ActionRead  = "read"
	ActionWrite = "write"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var defaultPolicies = [][]string{
	{RoleReader, ResourceStatements, ActionRead},
	{RoleReader, ResourceUsers, ActionRead},
	{RoleWriter, ResourceStatements, ActionWrite},
	{RoleWriter, ResourceUsers, ActionWrite},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an in-memory enforcer loaded with the default policy.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// RolesFor derives the roles granted by a credential's flags.
func RolesFor(perms credential.Permissions) []string {
	var roles []string
	if perms.Read {
		roles = append(roles, RoleReader)
	}
	if perms.Write {
		roles = append(roles, RoleWriter)
	}
	return roles
}

// Allowed reports whether any role granted by perms may perform action on
// resource.
func (e *Enforcer) Allowed(perms credential.Permissions, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, role := range RolesFor(perms) {
		allowed, err := e.enforcer.Enforce(role, resource, action)
		if err != nil {
			e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			return false, fmt.Errorf("permission check failed: %w", err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}
