package models

// Role is the coarse access level carried by a console session token.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// Capability is the explicit permission value threaded through handlers and
// bundles. It is derived once at the edge and passed down; nothing below the
// middleware reads ambient auth state.
type Capability struct {
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// CapabilityForRole maps a session role onto edit/delete capability.
func CapabilityForRole(role Role) Capability {
	switch role {
	case RoleAdmin:
		return Capability{CanEdit: true, CanDelete: true}
	case RoleStaff:
		return Capability{CanEdit: true}
	default:
		return Capability{}
	}
}

// FullCapability is used when authentication is disabled.
func FullCapability() Capability {
	return Capability{CanEdit: true, CanDelete: true}
}
