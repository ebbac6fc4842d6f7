// Package authz decides whether an identity may run a role-scoped operation.
// It has no side effects; callers deliver the returned notice.
package authz

import (
	"net/url"

	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/notify"
)

const (
	LoginPath = "/login"
	HomePath  = "/"

	DeniedText = "No tienes permiso para acceder a esta pagina."
	LoginText  = "Debes iniciar sesion para continuar."
)

// Identity is the authenticated caller as supplied by the session layer.
type Identity struct {
	UserID      uint
	Username    string
	Role        user.Role
	IsSuperuser bool
}

func (id *Identity) IsAdmin() bool {
	return id != nil && (id.IsSuperuser || id.Role == user.RoleAdmin)
}

func (id *Identity) Has(role user.Role) bool {
	return id != nil && id.Role == role
}

type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectDenied
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDenied:
		return "redirect_denied"
	}
	return "unknown"
}

type Decision struct {
	Outcome  Outcome
	Location string
	Notice   notify.Notice
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

// Authorize gates access to requestedPath. Superusers bypass the role check.
func Authorize(id *Identity, requestedPath string, allowed ...user.Role) Decision {
	if id == nil {
		return Decision{
			Outcome:  RedirectLogin,
			Location: LoginLocation(requestedPath),
			Notice:   notify.Warning(LoginText),
		}
	}
	if id.IsSuperuser {
		return Decision{Outcome: Allow}
	}
	for _, r := range allowed {
		if id.Role == r {
			return Decision{Outcome: Allow}
		}
	}
	return Decision{
		Outcome:  RedirectDenied,
		Location: HomePath,
		Notice:   notify.Error(DeniedText),
	}
}

// LoginLocation builds the login URL that resumes at next after signing in.
func LoginLocation(next string) string {
	if next == "" {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(next)
}

// HomeFor is the landing page for a role after login or a refused action.
func HomeFor(role user.Role) string {
	switch role {
	case user.RoleAdmin:
		return "/admin/dashboard"
	case user.RoleCompany:
		return "/company/projects"
	case user.RoleApprentice:
		return "/apprentice/dashboard"
	case user.RoleInstructor:
		return "/instructor/projects"
	}
	return HomePath
}

// ProfilePathFor is where a user completes their profile.
func ProfilePathFor(role user.Role) string {
	switch role.ProfileKind() {
	case user.ProfileCompany:
		return "/company/profile"
	case user.ProfileApprentice:
		return "/apprentice/profile"
	case user.ProfileInstructor:
		return "/instructor/profile"
	}
	return HomePath
}
