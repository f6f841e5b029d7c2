package policy

import "greendrop-service/src/internal/entity"

// Caller is the authenticated identity evaluated against a resource.
type Caller struct {
	UserID string
	Role   string
}

// OrderResource carries the ownership facts needed to authorize an
// action on an order. ShopOwnerID is the owner of the order's shop,
// not whatever shop the caller happens to own.
type OrderResource struct {
	OwnerID     string
	DriverID    *string
	ShopOwnerID string
}

func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// CanViewOrder allows the order's owner, its assigned driver, the
// owning merchant, and admins.
func CanViewOrder(caller Caller, res OrderResource) bool {
	if caller.IsAdmin() || caller.UserID == res.OwnerID {
		return true
	}
	return isAssignedDriver(caller, res) || isOwningMerchant(caller, res)
}

// CanUpdateOrderStatus allows admins, the assigned driver, and the
// merchant who owns the order's shop.
func CanUpdateOrderStatus(caller Caller, res OrderResource) bool {
	if caller.IsAdmin() {
		return true
	}
	return isAssignedDriver(caller, res) || isOwningMerchant(caller, res)
}

// CanAssignDriver is admin-only.
func CanAssignDriver(caller Caller) bool {
	return caller.IsAdmin()
}

// CanReviewOrder allows only the order's owner.
func CanReviewOrder(caller Caller, res OrderResource) bool {
	return caller.UserID == res.OwnerID
}

// CanManageShop allows the shop owner and admins.
func CanManageShop(caller Caller, shopOwnerID string) bool {
	return caller.IsAdmin() || (caller.Role == entity.RoleMerchant && caller.UserID == shopOwnerID)
}

func isAssignedDriver(caller Caller, res OrderResource) bool {
	return caller.Role == entity.RoleDriver &&
		res.DriverID != nil && *res.DriverID == caller.UserID
}

func isOwningMerchant(caller Caller, res OrderResource) bool {
	return caller.Role == entity.RoleMerchant && caller.UserID == res.ShopOwnerID
}
