package model

type OnboardShopRequest struct {
	UserID     string `json:"-" validate:"required"`
	ShopID     string `json:"shopId" validate:"required,max=100"`
	FirstName  string `json:"firstName,omitempty" validate:"max=100"`
	LastName   string `json:"lastName,omitempty" validate:"max=100"`
	Phone      string `json:"phone,omitempty" validate:"max=30"`
	Address    string `json:"address,omitempty" validate:"max=500"`
	City       string `json:"city,omitempty" validate:"max=100"`
	PostalCode string `json:"postalCode,omitempty" validate:"max=20"`
	IBAN       string `json:"iban,omitempty" validate:"max=40"`
	Origin     string `json:"-"`
}

type OnboardDriverRequest struct {
	UserID     string `json:"-" validate:"required"`
	FirstName  string `json:"firstName,omitempty" validate:"max=100"`
	LastName   string `json:"lastName,omitempty" validate:"max=100"`
	Phone      string `json:"phone,omitempty" validate:"max=30"`
	IBAN       string `json:"iban,omitempty" validate:"max=40"`
	Origin     string `json:"-"`
}

type OnboardResponse struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}

type DashboardRequest struct {
	UserID string `json:"-" validate:"required"`
	ShopID string `json:"shopId,omitempty" validate:"omitempty,max=100"`
}

type DashboardResponse struct {
	URL string `json:"url"`
}
