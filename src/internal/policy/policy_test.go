package policy

import (
	"testing"

	"greendrop-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestCanUpdateOrderStatus(t *testing.T) {
	res := OrderResource{
		OwnerID:     "customer-1",
		DriverID:    strptr("driver-1"),
		ShopOwnerID: "merchant-1",
	}

	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{"admin", Caller{UserID: "anyone", Role: entity.RoleAdmin}, true},
		{"assigned driver", Caller{UserID: "driver-1", Role: entity.RoleDriver}, true},
		{"other driver", Caller{UserID: "driver-2", Role: entity.RoleDriver}, false},
		{"owning merchant", Caller{UserID: "merchant-1", Role: entity.RoleMerchant}, true},
		{"unrelated merchant", Caller{UserID: "merchant-2", Role: entity.RoleMerchant}, false},
		{"order owner", Caller{UserID: "customer-1", Role: entity.RoleUser}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanUpdateOrderStatus(tt.caller, res))
		})
	}
}

func TestCanUpdateOrderStatusNoDriverAssigned(t *testing.T) {
	res := OrderResource{OwnerID: "customer-1", ShopOwnerID: "merchant-1"}
	assert.False(t, CanUpdateOrderStatus(Caller{UserID: "driver-1", Role: entity.RoleDriver}, res))
}

func TestCanViewOrder(t *testing.T) {
	res := OrderResource{
		OwnerID:     "customer-1",
		DriverID:    strptr("driver-1"),
		ShopOwnerID: "merchant-1",
	}

	assert.True(t, CanViewOrder(Caller{UserID: "customer-1", Role: entity.RoleUser}, res))
	assert.True(t, CanViewOrder(Caller{UserID: "root", Role: entity.RoleAdmin}, res))
	assert.True(t, CanViewOrder(Caller{UserID: "driver-1", Role: entity.RoleDriver}, res))
	assert.True(t, CanViewOrder(Caller{UserID: "merchant-1", Role: entity.RoleMerchant}, res))
	assert.False(t, CanViewOrder(Caller{UserID: "customer-2", Role: entity.RoleUser}, res))
}

func TestCanManageShop(t *testing.T) {
	assert.True(t, CanManageShop(Caller{UserID: "m1", Role: entity.RoleMerchant}, "m1"))
	assert.False(t, CanManageShop(Caller{UserID: "m2", Role: entity.RoleMerchant}, "m1"))
	assert.True(t, CanManageShop(Caller{UserID: "root", Role: entity.RoleAdmin}, "m1"))
	// a plain user owning the shop record still needs the merchant role
	assert.False(t, CanManageShop(Caller{UserID: "m1", Role: entity.RoleUser}, "m1"))
}

func TestCanAssignDriver(t *testing.T) {
	assert.True(t, CanAssignDriver(Caller{Role: entity.RoleAdmin}))
	assert.False(t, CanAssignDriver(Caller{Role: entity.RoleMerchant}))
	assert.False(t, CanAssignDriver(Caller{Role: entity.RoleDriver}))
}

func TestCanReviewOrder(t *testing.T) {
	res := OrderResource{OwnerID: "customer-1"}
	assert.True(t, CanReviewOrder(Caller{UserID: "customer-1", Role: entity.RoleUser}, res))
	assert.False(t, CanReviewOrder(Caller{UserID: "customer-2", Role: entity.RoleUser}, res))
}
