package model

import "time"

type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=100"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	UserID           string             `json:"-" validate:"required"`
	ShopID           string             `json:"shopId" validate:"required,max=100"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress  string             `json:"deliveryAddress" validate:"required,max=500"`
	DeliveryLocation LocationRequest    `json:"deliveryLocation" validate:"required"`
	PaymentMethod    string             `json:"paymentMethod,omitempty" validate:"omitempty,oneof=card cash"`
	Notes            string             `json:"notes,omitempty" validate:"max=1000"`
}

type UpdateOrderStatusRequest struct {
	OrderID  string `json:"-" validate:"required"`
	Status   string `json:"status" validate:"required,max=30"`
	DriverID string `json:"driverId,omitempty" validate:"omitempty,max=100"`
	Notes    string `json:"notes,omitempty" validate:"max=1000"`
}

type ListOrdersRequest struct {
	UserID string `json:"-" validate:"required"`
	Status string `json:"status,omitempty" validate:"omitempty,max=30"`
}

type AdminListOrdersRequest struct {
	Status   string `query:"status" validate:"omitempty,max=30"`
	ShopID   string `query:"shopId" validate:"omitempty,max=100"`
	DriverID string `query:"driverId" validate:"omitempty,max=100"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=200"`
}

type GetOrderRequest struct {
	OrderID string `json:"-" validate:"required"`
}

type OrderStatusNotice struct {
	OrderID string    `json:"orderId"`
	UserID  string    `json:"userId"`
	Status  string    `json:"status"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	At      time.Time `json:"at"`
}
