package model

type Event interface {
	GetId() string
}

type OrderCreatedEvent struct {
	ID      string  `json:"id,omitempty"`
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	ShopID  string  `json:"shop_id"`
	Total   float64 `json:"total"`
}

func (e *OrderCreatedEvent) GetId() string {
	return e.ID
}

type OrderStatusEvent struct {
	ID       string `json:"id,omitempty"`
	OrderID  string `json:"order_id"`
	UserID   string `json:"user_id"`
	ActorID  string `json:"actor_id"`
	Status   string `json:"status"`
	Previous string `json:"previous"`
}

func (e *OrderStatusEvent) GetId() string {
	return e.ID
}

type PushEvent struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (e *PushEvent) GetId() string {
	return e.ID
}
