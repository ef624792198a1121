// Package auth resolves console logins to principals and roles.
//
// Credentials are a static in-process table, carried over from the
// system this replaces. That is a known weakness, kept deliberately:
// hardening authentication is out of scope here, and the rest of the
// system only ever sees the authenticated Principal.
package auth

import (
	"errors"
	"strings"

	"labsched/internal/schedule"
)

// Role gates administrative operations.
type Role int

const (
	// RoleTeacher can book slots and file reports.
	RoleTeacher Role = iota + 1
	// RoleTechnician can additionally manage attendance records.
	RoleTechnician
	// RoleAdmin can additionally purge stored data.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleTeacher:
		return "teacher"
	case RoleTechnician:
		return "technician"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ErrInvalidCredentials is returned for a bad login/password pair. The
// message never says which half was wrong.
var ErrInvalidCredentials = errors.New("invalid login or password")

// Account is an authenticated identity.
type Account struct {
	Login     string
	Role      Role
	Principal schedule.Principal
}

type credential struct {
	password string
	role     Role
}

var credentials = map[string]credential{
	"admin":     {password: "admin123", role: RoleAdmin},
	"proftec":   {password: "tecnico123", role: RoleTechnician},
	"professor": {password: "prof123", role: RoleTeacher},
}

// Authenticate resolves a login/password pair to an Account. Logins are
// trimmed and case-folded, matching the acceptance behavior of the
// system this replaces; passwords are compared exactly.
func Authenticate(login, password string) (Account, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	cred, ok := credentials[login]
	if !ok || cred.password != password {
		return Account{}, ErrInvalidCredentials
	}
	principal, err := schedule.ParsePrincipal(login)
	if err != nil {
		return Account{}, err
	}
	return Account{Login: login, Role: cred.role, Principal: principal}, nil
}
