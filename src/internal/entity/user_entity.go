package entity

import (
	"database/sql"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleUser     = "user"
	RoleMerchant = "merchant"
	RoleDriver   = "driver"
)

const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

type User struct {
	UserID           string         `json:"user_id" db:"user_id"`
	FullName         string         `json:"full_name" db:"full_name"`
	Email            string         `json:"email" db:"email"`
	Role             sql.NullString `json:"role" db:"role"`
	MobileNumber     string         `json:"mobile_number" db:"mobile_number"`
	StripeCustomerID *string        `json:"-" db:"stripe_customer_id"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty" db:"updated_at"`
}

// EffectiveRole defaults to "user" when no explicit role is stored.
func (u *User) EffectiveRole() string {
	if u.Role.Valid && u.Role.String != "" {
		return u.Role.String
	}
	return RoleUser
}

type Driver struct {
	DriverID           string     `db:"driver_id" json:"driverId"`
	Status             string     `db:"status" json:"status"`
	StripeAccountID    *string    `db:"stripe_account_id" json:"-"`
	VerificationStatus string     `db:"verification_status" json:"verificationStatus"`
	VerificationNote   *string    `db:"verification_note" json:"verificationNote,omitempty"`
	DocumentURL        *string    `db:"document_url" json:"documentUrl,omitempty"`
	VerifiedAt         *time.Time `db:"verified_at" json:"verifiedAt,omitempty"`
	LastSeenAt         *time.Time `db:"last_seen_at" json:"lastSeenAt,omitempty"`
}
