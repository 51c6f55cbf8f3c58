// Package user holds the read-only view of users this service consumes.
// User records are owned by another system; this core only resolves
// display names and role codes.
package user

// User is a read-only user reference.
type User struct {
	ID   uint
	Name string
	Role string
}

// RoleCodeAdmin is the role code required for administrative operations.
const RoleCodeAdmin = "ADMIN"

func (u User) IsAdmin() bool {
	return u.Role == RoleCodeAdmin
}
