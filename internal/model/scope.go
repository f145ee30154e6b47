package model

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
	RoleViewer = "VIEWER"
)

// Scope identifies the authenticated user a request acts on behalf of.
// Every dashboard session is keyed by Scope.UserID.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"` // ADMIN, MEMBER, or VIEWER
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsViewer checks if the scope has viewer role.
func (s Scope) IsViewer() bool {
	return s.Role == RoleViewer
}
