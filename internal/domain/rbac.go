package domain

// Permission is one resource:action pair from the RBAC policy, e.g. leave:decide_team.
type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

func (p Permission) String() string {
	return p.Resource + ":" + p.Action
}

// EnforceRequest asks whether Role may perform Action on Resource.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required,role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

func (r EnforceRequest) Permission() Permission {
	return Permission{Resource: r.Resource, Action: r.Action}
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse = Permission
