package types

import "time"

// Roles. Admin sessions may delete rows through the table editor; every other
// role is limited to edits and appends.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Credential is one entry of the static credential table. Passwords are
// stored and compared in plaintext; this mirrors the deployed configuration
// and is a documented weakness, not an oversight to harden here.
type Credential struct {
	Username string   `mapstructure:"username" yaml:"username"`
	Password string   `mapstructure:"password" yaml:"password"`
	Role     string   `mapstructure:"role" yaml:"role"`
	Modules  []string `mapstructure:"modules" yaml:"modules"`
}

// Session is the per-invocation context for a logged-in user. It is created
// at login, passed explicitly to every handler that needs it, and discarded
// when the command finishes. Nothing session-scoped lives in package globals.
type Session struct {
	Token     string
	Username  string
	Role      string
	Modules   []string
	StartedAt time.Time
}

// CanAccess reports whether the session's user may open the named module.
func (s *Session) CanAccess(module string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.Modules {
		if m == module {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session holds the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
