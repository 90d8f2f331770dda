// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the marketplace.
// The core treats it as an opaque tag beyond membership checks: it is
// embedded in session tokens and echoed back to clients.
type Role string

const (
	// RoleFarmer indicates a produce-listing account.
	RoleFarmer Role = "farmer"
	// RoleVehicleOwner indicates a transport-offering account.
	RoleVehicleOwner Role = "vehicle_owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleVehicleOwner:
		return true
	default:
		return false
	}
}
