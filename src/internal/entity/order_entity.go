package entity

import "time"

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusPickedUp  = "picked_up"
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// forward chain of the order state machine; cancelled is reachable
// from any non-terminal state.
var nextStatus = map[string]string{
	StatusPending:   StatusPaid,
	StatusPaid:      StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusPickedUp,
	StatusPickedUp:  StatusInTransit,
	StatusInTransit: StatusDelivered,
}

// NormalizeStatus maps legacy labels from older clients onto the
// canonical state machine.
func NormalizeStatus(status string) string {
	switch status {
	case "created":
		return StatusPending
	case "completed":
		return StatusDelivered
	default:
		return status
	}
}

func IsValidStatus(status string) bool {
	if status == StatusDelivered || status == StatusCancelled {
		return true
	}
	_, ok := nextStatus[status]
	return ok
}

func IsTerminalStatus(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// CanTransition reports whether moving from one status to the next is a
// legal forward move. Cancellation is allowed from every non-terminal state.
func CanTransition(from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return nextStatus[from] == to
}

type Order struct {
	ID                     string     `db:"id" json:"id"`
	Reference              string     `db:"reference" json:"reference"`
	UserID                 string     `db:"user_id" json:"userId"`
	ShopID                 string     `db:"shop_id" json:"shopId"`
	DriverID               *string    `db:"driver_id" json:"driverId,omitempty"`
	Subtotal               float64    `db:"subtotal" json:"subtotal"`
	DeliveryFee            float64    `db:"delivery_fee" json:"deliveryFee"`
	Total                  float64    `db:"total" json:"total"`
	Status                 string     `db:"status" json:"status"`
	PaymentMethod          string     `db:"payment_method" json:"paymentMethod"`
	PaymentStatus          string     `db:"payment_status" json:"paymentStatus"`
	PaymentIntentID        *string    `db:"payment_intent_id" json:"paymentIntentId,omitempty"`
	DriverTransferID       *string    `db:"driver_transfer_id" json:"driverTransferId,omitempty"`
	DriverTransferError    *string    `db:"driver_transfer_error" json:"driverTransferError,omitempty"`
	PayoutClaimedAt        *time.Time `db:"payout_claimed_at" json:"-"`
	DriverPaidAt           *time.Time `db:"driver_paid_at" json:"driverPaidAt,omitempty"`
	DriverTransferFailedAt *time.Time `db:"driver_transfer_failed_at" json:"driverTransferFailedAt,omitempty"`
	DeliveryAddress        string     `db:"delivery_address" json:"deliveryAddress"`
	DeliveryLat            float64    `db:"delivery_lat" json:"deliveryLat"`
	DeliveryLng            float64    `db:"delivery_lng" json:"deliveryLng"`
	Notes                  *string    `db:"notes" json:"notes,omitempty"`
	EstimatedDeliveryTime  *time.Time `db:"estimated_delivery_time" json:"estimatedDeliveryTime,omitempty"`
	CreatedAt              time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updatedAt"`
	DeliveredAt            *time.Time `db:"delivered_at" json:"deliveredAt,omitempty"`
}

type OrderItem struct {
	ID        string  `db:"id" json:"id"`
	OrderID   string  `db:"order_id" json:"orderId"`
	ProductID string  `db:"product_id" json:"productId"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
}

type OrderActivity struct {
	ID        string    `db:"id" json:"id"`
	OrderID   string    `db:"order_id" json:"orderId"`
	ActorID   string    `db:"actor_id" json:"actorId"`
	Action    string    `db:"action" json:"action"`
	Note      *string   `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
