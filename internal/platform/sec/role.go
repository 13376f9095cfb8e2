// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can publish and manage their own courses
	RoleInstructor UserRole = "instructor"

	// Default role for registered learners
	RoleStudent UserRole = "student"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleInstructor:
		return 20
	case RoleStudent:
		return 10
	default:
		return 0
	}
}
