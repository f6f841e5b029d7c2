package model

type CreateIntentRequest struct {
	UserID       string  `json:"-" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Currency     string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	OrderID      string  `json:"orderId,omitempty" validate:"omitempty,max=100"`
	ShopID       string  `json:"shopId,omitempty" validate:"omitempty,max=100"`
	DriverID     string  `json:"driverId,omitempty" validate:"omitempty,max=100"`
	UseSavedCard bool    `json:"useSavedCard,omitempty"`
}

type CreateIntentResponse struct {
	ClientSecret   string `json:"clientSecret,omitempty"`
	EphemeralKey   string `json:"ephemeralKey,omitempty"`
	CustomerID     string `json:"customerId"`
	IntentID       string `json:"intentId"`
	Status         string `json:"status"`
	PublishableKey string `json:"publishableKey"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}
