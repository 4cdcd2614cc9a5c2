package auth

// LoginPayload represents the login request body. The identifier can be a
// username or an email address.
type LoginPayload struct {
	Identifier string `json:"identifier" validate:"required,max=200"`
	Password   string `json:"password" validate:"required,max=200"`
}

// PermissionsResponse reports the capabilities the session's role grants.
type PermissionsResponse struct {
	CanAdd           bool `json:"canAdd"`
	CanEdit          bool `json:"canEdit"`
	CanDelete        bool `json:"canDelete"`
	CanViewPrices    bool `json:"canViewPrices"`
	CanViewDebugInfo bool `json:"canViewDebugInfo"`
}

// MeResponse represents the current user response.
type MeResponse struct {
	ID          string              `json:"user_id"`
	DisplayName string              `json:"display_name"`
	Role        string              `json:"role"`
	Permissions PermissionsResponse `json:"permissions"`
}
