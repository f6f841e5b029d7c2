package payment

import "context"

// Gateway abstracts the payment processor. Amounts are minor currency
// units throughout.
type Gateway interface {
	CreateCustomer(ctx context.Context, name, email string) (string, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (string, error)
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
	LatestCardPaymentMethod(ctx context.Context, customerID string) (string, error)

	CreateAccount(ctx context.Context, params AccountParams) (string, error)
	DeleteAccount(ctx context.Context, accountID string) error
	AttachBankAccount(ctx context.Context, accountID, iban, holderName string) error
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	CreateLoginLink(ctx context.Context, accountID string) (string, error)

	CreateTransfer(ctx context.Context, params TransferParams) (string, error)

	VerifyEvent(payload []byte, signatureHeader string) (*Event, error)
}

type IntentParams struct {
	AmountMinor        int64
	Currency           string
	CustomerID         string
	DestinationAccount string
	DestinationMinor   int64
	PaymentMethod      string
	ConfirmOffSession  bool
	Metadata           map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

type AccountParams struct {
	Country  string
	Email    string
	Metadata map[string]string
}

type TransferParams struct {
	AmountMinor        int64
	Currency           string
	DestinationAccount string
	SourceCharge       string
	Metadata           map[string]string
}

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// Event is the verified, decoded webhook payload.
type Event struct {
	Type     string
	IntentID string
	ChargeID string
}
