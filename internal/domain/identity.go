package domain

// Role is the caller's role as asserted by a verified token.
// The set of roles is open; only a few are recognised as privileged.
type Role string

// Recognised privileged roles.
const (
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleAdmin           Role = "admin"
)

// Identity is the caller extracted from a verified token.
// It lives for one request and is never persisted.
type Identity struct {
	UserID string
	Role   Role
}

// IsPrivileged reports whether role may manage restaurants and menus.
//
// This is a flat membership check. A restaurant_owner is not tied to the
// restaurants they own, so any owner may change any restaurant.
func IsPrivileged(role Role) bool {
	switch role {
	case RoleRestaurantOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageRestaurants reports whether the identity passes the owner gate.
func (i Identity) CanManageRestaurants() bool {
	return IsPrivileged(i.Role)
}
