// Package models holds the domain types shared by the storerating server and
// client: users, stores, ratings, roles and the rating aggregates.
package models

import "fmt"

// Role is the closed set of account kinds. Every switch over a Role must list
// all three variants; Roles returns them for exhaustive iteration.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleStoreOwner Role = "store_owner"
)

// Roles returns every known role in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleStoreOwner}
}

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleStoreOwner:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Title is the human readable role name used by dashboards.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleUser:
		return "User"
	case RoleStoreOwner:
		return "Store Owner"
	}
	return string(r)
}
