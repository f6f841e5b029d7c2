package entity

import "time"

type Shop struct {
	ID              string     `db:"id" json:"id"`
	OwnerID         string     `db:"owner_id" json:"ownerId"`
	Name            string     `db:"name" json:"name"`
	Address         string     `db:"address" json:"address"`
	Lat             float64    `db:"lat" json:"lat"`
	Lng             float64    `db:"lng" json:"lng"`
	DeliveryFee     *float64   `db:"delivery_fee" json:"deliveryFee,omitempty"`
	StripeAccountID *string    `db:"stripe_account_id" json:"-"`
	Active          bool       `db:"active" json:"active"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

type Product struct {
	ID        string    `db:"id" json:"id"`
	ShopID    string    `db:"shop_id" json:"shopId"`
	Name      string    `db:"name" json:"name"`
	Price     float64   `db:"price" json:"price"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
