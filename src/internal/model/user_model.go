package model

import "time"

type UserResponse struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role,omitempty"`
	MobileNumber string     `json:"mobile_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type GetUserRequest struct {
	ID string `json:"id" validate:"required,max=100"`
}

type VerifyDriverRequest struct {
	DriverID string `json:"-" validate:"required"`
	AdminID  string `json:"-" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=approved rejected"`
	Note     string `json:"note,omitempty" validate:"max=2000"`
}

type NearbyShopsRequest struct {
	Lat    float64 `query:"lat" validate:"required"`
	Lng    float64 `query:"lng" validate:"required"`
	Radius float64 `query:"radius" validate:"omitempty,gt=0,lte=100"`
}

type NearbyShop struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distanceKm"`
}

type UpsertZoneRequest struct {
	ZoneID  string `json:"-"`
	AdminID string `json:"-" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Polygon string `json:"polygon" validate:"required"`
	Active  bool   `json:"active"`
}
