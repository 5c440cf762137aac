package domain

// GuardState is the authentication state the route guard evaluates.
type GuardState int

const (
	Anonymous GuardState = iota
	AuthenticatedStudent
	AuthenticatedAdmin
)

// View paths the guard redirects to. The navigation layer owns the actual
// views; the guard only names them.
const (
	PathLogin       = "/login"
	PathStudentHome = "/dashboard"
	PathAdminHome   = "/admin"
)

// StateForRole maps an (optionally empty) role claim to a guard state.
func StateForRole(role string) GuardState {
	switch role {
	case RoleStudent:
		return AuthenticatedStudent
	case RoleAdmin:
		return AuthenticatedAdmin
	}
	return Anonymous
}

// Role returns the role string for an authenticated state, or "" for Anonymous.
func (s GuardState) Role() string {
	switch s {
	case AuthenticatedStudent:
		return RoleStudent
	case AuthenticatedAdmin:
		return RoleAdmin
	}
	return ""
}

// HomePath is where an authenticated caller belongs when turned away from a
// view that is not theirs.
func (s GuardState) HomePath() string {
	if s == AuthenticatedAdmin {
		return PathAdminHome
	}
	return PathStudentHome
}

// RouteRule describes what a view demands from its caller.
type RouteRule struct {
	// RequireAuth rejects anonymous callers.
	RequireAuth bool
	// Role narrows RequireAuth to one specific role.
	Role string
	// PublicOnly marks login/register style views that authenticated callers
	// are bounced away from.
	PublicOnly bool
}

// Decision is the guard verdict: render the view, or redirect elsewhere.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is a pure function of (state, rule) with no side effects.
// Anonymous callers of protected views are sent to the login view; callers
// authenticated with the wrong role are sent to their own role's home view,
// never back to login.
func Decide(state GuardState, rule RouteRule) Decision {
	switch {
	case rule.PublicOnly:
		if state == Anonymous {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: state.HomePath()}
	case rule.RequireAuth:
		if state == Anonymous {
			return Decision{RedirectTo: PathLogin}
		}
		if rule.Role != "" && state.Role() != rule.Role {
			return Decision{RedirectTo: state.HomePath()}
		}
		return Decision{Allow: true}
	}
	return Decision{Allow: true}
}
