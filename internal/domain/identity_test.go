package domain

import "testing"

func TestIsPrivileged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		want bool
	}{
		{RoleRestaurantOwner, true},
		{RoleAdmin, true},
		{"customer", false},
		{"", false},
		{"Admin", false},
		{"restaurant_owner ", false},
	}

	for _, tc := range tests {
		if got := IsPrivileged(tc.role); got != tc.want {
			t.Errorf("IsPrivileged(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestIdentityCanManageRestaurants(t *testing.T) {
	t.Parallel()

	owner := Identity{UserID: "6736db2b67909bf7fe940230", Role: RoleRestaurantOwner}
	if !owner.CanManageRestaurants() {
		t.Error("Expected restaurant_owner to pass the gate")
	}

	var anonymous Identity
	if anonymous.CanManageRestaurants() {
		t.Error("Expected zero Identity to be rejected")
	}

	customer := Identity{UserID: "u-1", Role: "customer"}
	if customer.CanManageRestaurants() {
		t.Error("Expected customer to be rejected")
	}
}
