package entity

import "time"

// DeliveryZone bounds where orders can legally be delivered.
// Polygon holds a GeoJSON geometry; the service stores and serves it
// without interpreting the coordinates.
type DeliveryZone struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Polygon   []byte     `db:"polygon" json:"polygon"`
	Active    bool       `db:"active" json:"active"`
	UpdatedBy *string    `db:"updated_by" json:"updatedBy,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

type Notification struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	OrderID   *string   `db:"order_id" json:"orderId,omitempty"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
