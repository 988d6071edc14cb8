package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
)

const (
	ResourceOrders  = "orders"
	ResourceReviews = "reviews"

	ActionRead      = "read"
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionReconcile = "reconcile"
	ActionDelete    = "delete"
	ActionPin       = "pin"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies grants moderators review moderation only. Admins inherit
// moderator rights and add order management.
var defaultPolicies = [][]string{
	{constants.RoleModerator, ResourceReviews, ActionRead},
	{constants.RoleModerator, ResourceReviews, ActionDelete},
	{constants.RoleModerator, ResourceReviews, ActionPin},
	{constants.RoleAdmin, ResourceOrders, ActionRead},
	{constants.RoleAdmin, ResourceOrders, ActionApprove},
	{constants.RoleAdmin, ResourceOrders, ActionReject},
	{constants.RoleAdmin, ResourceOrders, ActionReconcile},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer loads policies from the casbin_rule table, seeding the
// defaults on first start.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log.With("component", "permission.enforcer"),
	}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) seed() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}

	ok, err := e.enforcer.AddGroupingPolicy(constants.RoleAdmin, constants.RoleModerator)
	if err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}
	if ok {
		added++
	}

	if added > 0 {
		e.logger.Infow("seeded default permissions", "count", added)
	}
	return nil
}

func (e *Enforcer) Enforce(role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	e.logger.Infow("policy reloaded successfully")
	return nil
}
