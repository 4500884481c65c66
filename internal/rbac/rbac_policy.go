package rbac

import "go-leave/internal/domain"

// ModelText is the casbin model: a role inherits the grants of the roles it is linked to.
const ModelText = `[request_definition]
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

type Grant struct {
	Role     domain.Role
	Resource string
	Action   string
}

// Inherits lists role -> parent links. Every role can do what an employee does
// with their own leave.
var Inherits = map[domain.Role]domain.Role{
	domain.RoleManager: domain.RoleEmployee,
	domain.RoleHR:      domain.RoleEmployee,
	domain.RoleAdmin:   domain.RoleEmployee,
}

var Grants = []Grant{
	{domain.RoleEmployee, "leave", "create"},
	{domain.RoleEmployee, "leave", "read_own"},
	{domain.RoleEmployee, "leave", "update_own"},
	{domain.RoleEmployee, "leave", "delete_own"},
	{domain.RoleEmployee, "notification", "read"},

	{domain.RoleManager, "leave", "review_team"},
	{domain.RoleManager, "leave", "decide_team"},
	{domain.RoleManager, "user", "read_team"},
	{domain.RoleManager, "attendance", "read"},
	{domain.RoleManager, "attendance", "read_team"},
	{domain.RoleManager, "analytics", "read"},

	{domain.RoleHR, "leave", "review_hr"},
	{domain.RoleHR, "leave", "decide_hr"},
	{domain.RoleHR, "user", "read"},
	{domain.RoleHR, "user", "balance"},
	{domain.RoleHR, "user", "read_team"},
	{domain.RoleHR, "attendance", "read"},
	{domain.RoleHR, "analytics", "read"},

	{domain.RoleAdmin, "leave", "review_all"},
	{domain.RoleAdmin, "leave", "decide_admin"},
	{domain.RoleAdmin, "user", "manage"},
	{domain.RoleAdmin, "user", "read"},
	{domain.RoleAdmin, "user", "balance"},
	{domain.RoleAdmin, "user", "read_team"},
	{domain.RoleAdmin, "attendance", "read"},
	{domain.RoleAdmin, "analytics", "read"},
}
