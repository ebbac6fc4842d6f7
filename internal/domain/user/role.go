package user

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleCompany    Role = "COMPANY"
	RoleApprentice Role = "APPRENTICE"
	RoleInstructor Role = "INSTRUCTOR"
)

// ProfileKind names the profile a role owns. ADMIN owns none.
type ProfileKind string

const (
	ProfileNone       ProfileKind = ""
	ProfileCompany    ProfileKind = "company"
	ProfileApprentice ProfileKind = "apprentice"
	ProfileInstructor ProfileKind = "instructor"
)

var AllRoles = []Role{RoleAdmin, RoleCompany, RoleApprentice, RoleInstructor}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleApprentice, RoleInstructor:
		return true
	}
	return false
}

func (r Role) ProfileKind() ProfileKind {
	switch r {
	case RoleCompany:
		return ProfileCompany
	case RoleApprentice:
		return ProfileApprentice
	case RoleInstructor:
		return ProfileInstructor
	default:
		return ProfileNone
	}
}

// Label is the display name used in notices and admin listings.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleCompany:
		return "Empresa"
	case RoleApprentice:
		return "Aprendiz"
	case RoleInstructor:
		return "Instructor"
	}
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
