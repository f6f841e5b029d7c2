package entity

import "time"

const (
	TargetShop   = "shop"
	TargetDriver = "driver"
)

type Review struct {
	ID         string    `db:"id" json:"id"`
	OrderID    string    `db:"order_id" json:"orderId"`
	AuthorID   string    `db:"author_id" json:"authorId"`
	TargetID   string    `db:"target_id" json:"targetId"`
	TargetType string    `db:"target_type" json:"targetType"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

const (
	DisputeOpen     = "open"
	DisputeResolved = "resolved"
	DisputeRejected = "rejected"
)

type Dispute struct {
	ID         string     `db:"id" json:"id"`
	OrderID    string     `db:"order_id" json:"orderId"`
	UserID     string     `db:"user_id" json:"userId"`
	Reason     string     `db:"reason" json:"reason"`
	Status     string     `db:"status" json:"status"`
	Resolution *string    `db:"resolution" json:"resolution,omitempty"`
	ResolvedBy *string    `db:"resolved_by" json:"resolvedBy,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolvedAt,omitempty"`
}
