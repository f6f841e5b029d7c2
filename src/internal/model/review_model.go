package model

type CreateReviewRequest struct {
	AuthorID   string `json:"-" validate:"required"`
	OrderID    string `json:"orderId" validate:"required,max=100"`
	TargetID   string `json:"targetId" validate:"required,max=100"`
	TargetType string `json:"targetType" validate:"required,oneof=shop driver"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment,omitempty" validate:"max=2000"`
}

type ListReviewsRequest struct {
	TargetID string `json:"-" validate:"required"`
}

type CreateDisputeRequest struct {
	UserID  string `json:"-" validate:"required"`
	OrderID string `json:"orderId" validate:"required,max=100"`
	Reason  string `json:"reason" validate:"required,max=2000"`
}

type ResolveDisputeRequest struct {
	DisputeID  string `json:"-" validate:"required"`
	AdminID    string `json:"-" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=resolved rejected"`
	Resolution string `json:"resolution" validate:"required,max=2000"`
}
