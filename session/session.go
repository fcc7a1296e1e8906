package session

import "slices"

// RoleAdmin is the super-admin override: any principal holding it passes
// every permission check.
const RoleAdmin = "ADMIN"

// Principal is the authenticated user's identity plus role and permission
// sets. It is the snapshot persisted between runs; no password material is
// ever stored.
type Principal struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	Nombre   string   `json:"nombre"`
	Apellido string   `json:"apellido"`
	Roles    []string `json:"roles"`
	Permisos []string `json:"permisos"`
}

// Valid reports whether the principal carries the minimum required
// fields. A stored principal failing this check is discarded on restore.
func (p *Principal) Valid() bool {
	return p != nil && p.ID != 0 && p.Email != ""
}

func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Roles, role)
}

// HasPermission applies the visibility rule: an empty code is always
// allowed, the ADMIN role overrides everything, otherwise the code must be
// in the principal's permission set.
func (p *Principal) HasPermission(code string) bool {
	if code == "" {
		return true
	}
	if p == nil {
		return false
	}
	if p.HasRole(RoleAdmin) {
		return true
	}
	return slices.Contains(p.Permisos, code)
}
