package auth

import (
	"fmt"
	"slices"
)

type Role string

const (
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

func (r Role) IsValid() bool {
	return r == RoleManager || r == RoleStaff
}

func ParseRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role %q", value)
	}
	return r, nil
}

type Permission string

const (
	PermOrderCreate        Permission = "ORDER.CREATE"
	PermOrderUpdateStatus  Permission = "ORDER.UPDATE_STATUS"
	PermVehicleMarkArrived Permission = "VEHICLE.MARK_ARRIVED"
	PermVehicleSetVIN      Permission = "VEHICLE.SET_VIN"
	PermVoucherCreate      Permission = "VOUCHER.CREATE"
	PermDeliveryCreate     Permission = "DELIVERY.CREATE"
	PermDeliveryComplete   Permission = "DELIVERY.COMPLETE"
)

var rolePermissions = map[Role][]Permission{
	RoleManager: {
		PermOrderCreate,
		PermOrderUpdateStatus,
		PermVehicleMarkArrived,
		PermVehicleSetVIN,
		PermVoucherCreate,
		PermDeliveryCreate,
		PermDeliveryComplete,
	},
	RoleStaff: {
		PermDeliveryCreate,
		PermDeliveryComplete,
	},
}

// Can reports whether the role holds perm. Unknown roles hold nothing.
func (r Role) Can(perm Permission) bool {
	return slices.Contains(rolePermissions[r], perm)
}
