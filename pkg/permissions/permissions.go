package permissions

// Role is the closed set of caller roles. It is parsed once at the session
// trust boundary; everything downstream works with the typed value.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleFamily     Role = "family"
	RoleResearcher Role = "researcher"
	RoleViewer     Role = "viewer"

	// RoleAnonymous is the absence of a session.
	RoleAnonymous Role = ""
)

// Capability is a named permitted action.
type Capability string

const (
	CapabilityView          Capability = "view"
	CapabilityAdd           Capability = "add"
	CapabilityEdit          Capability = "edit"
	CapabilityDelete        Capability = "delete"
	CapabilityViewPrices    Capability = "view_prices"
	CapabilityViewDebugInfo Capability = "view_debug_info"
)

var capabilitiesByRole = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapabilityView:          true,
		CapabilityAdd:           true,
		CapabilityEdit:          true,
		CapabilityDelete:        true,
		CapabilityViewPrices:    true,
		CapabilityViewDebugInfo: true,
	},
	RoleFamily: {
		CapabilityView:       true,
		CapabilityAdd:        true,
		CapabilityEdit:       true,
		CapabilityDelete:     true,
		CapabilityViewPrices: true,
	},
	RoleResearcher: {
		CapabilityView:       true,
		CapabilityViewPrices: true,
	},
	RoleViewer: {
		CapabilityView: true,
	},
	RoleAnonymous: {
		CapabilityView: true,
	},
}

// ParseRole maps a stored role string to a Role. Unrecognized strings reduce
// to viewer, which grants nothing beyond view.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleFamily, RoleResearcher, RoleViewer:
		return Role(s)
	default:
		return RoleViewer
	}
}

// Resolver answers capability checks. The zero value enforces the fixed
// role table; Bypass forces every check to pass and exists only for
// development environments.
type Resolver struct {
	Bypass bool
}

func NewResolver(bypass bool) *Resolver {
	return &Resolver{Bypass: bypass}
}

// Can reports whether the role grants the capability.
func (r *Resolver) Can(role Role, cap Capability) bool {
	if r.Bypass {
		return true
	}
	caps, ok := capabilitiesByRole[role]
	if !ok {
		// Unknown roles keep browse access only.
		return cap == CapabilityView
	}
	return caps[cap]
}
