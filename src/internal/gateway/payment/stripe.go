package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"greendrop-service/src/pkg/log"

	"github.com/spf13/viper"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	log           log.Log
}

func NewStripeGateway(v *viper.Viper, logger log.Log) *StripeGateway {
	api := &client.API{}
	api.Init(v.GetString("stripe.secret_key"), nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: v.GetString("stripe.webhook_secret"),
		log:           logger,
	}
}

func (s *StripeGateway) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	params := &stripe.CustomerParams{
		Name:  stripe.String(name),
		Email: stripe.String(email),
	}
	params.Context = ctx

	customer, err := s.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (s *StripeGateway) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripe.APIVersion),
	}
	params.Context = ctx

	key, err := s.api.EphemeralKeys.New(params)
	if err != nil {
		return "", err
	}
	return key.Secret, nil
}

func (s *StripeGateway) CreateIntent(ctx context.Context, p IntentParams) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountMinor),
		Currency: stripe.String(p.Currency),
		Customer: stripe.String(p.CustomerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	if p.DestinationAccount != "" {
		params.TransferData = &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.DestinationAccount),
			Amount:      stripe.Int64(p.DestinationMinor),
		}
	}
	if p.ConfirmOffSession {
		params.PaymentMethod = stripe.String(p.PaymentMethod)
		params.Confirm = stripe.Bool(true)
		params.OffSession = stripe.Bool(true)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

func (s *StripeGateway) LatestCardPaymentMethod(ctx context.Context, customerID string) (string, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := s.api.PaymentMethods.List(params)
	for iter.Next() {
		return iter.PaymentMethod().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", err
	}
	return "", nil
}

func (s *StripeGateway) CreateAccount(ctx context.Context, p AccountParams) (string, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		Country:      stripe.String(p.Country),
		Email:        stripe.String(p.Email),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	account, err := s.api.Accounts.New(params)
	if err != nil {
		return "", err
	}
	return account.ID, nil
}

func (s *StripeGateway) DeleteAccount(ctx context.Context, accountID string) error {
	params := &stripe.AccountParams{}
	params.Context = ctx
	_, err := s.api.Accounts.Del(accountID, params)
	return err
}

func (s *StripeGateway) AttachBankAccount(ctx context.Context, accountID, ibanValue, holderName string) error {
	params := &stripe.BankAccountParams{
		Account:           stripe.String(accountID),
		Country:           stripe.String("FR"),
		Currency:          stripe.String("eur"),
		AccountNumber:     stripe.String(ibanValue),
		AccountHolderName: stripe.String(holderName),
		AccountHolderType: stripe.String("individual"),
	}
	params.Context = ctx

	_, err := s.api.BankAccounts.New(params)
	return err
}

func (s *StripeGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := s.api.AccountLinks.New(params)
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

func (s *StripeGateway) CreateLoginLink(ctx context.Context, accountID string) (string, error) {
	params := &stripe.LoginLinkParams{
		Account: stripe.String(accountID),
	}
	params.Context = ctx

	link, err := s.api.LoginLinks.New(params)
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

func (s *StripeGateway) CreateTransfer(ctx context.Context, p TransferParams) (string, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(p.AmountMinor),
		Currency:    stripe.String(p.Currency),
		Destination: stripe.String(p.DestinationAccount),
	}
	params.Context = ctx
	if p.SourceCharge != "" {
		params.SourceTransaction = stripe.String(p.SourceCharge)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	transfer, err := s.api.Transfers.New(params)
	if err != nil {
		return "", err
	}
	return transfer.ID, nil
}

// VerifyEvent checks the webhook signature and decodes the intent
// payload. A signature failure returns an error and nothing else
// happens with the event.
func (s *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	event := &Event{Type: string(stripeEvent.Type)}
	switch stripeEvent.Type {
	case stripe.EventTypePaymentIntentSucceeded, stripe.EventTypePaymentIntentPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("failed to decode payment intent payload: %w", err)
		}
		event.IntentID = intent.ID
		if intent.LatestCharge != nil {
			event.ChargeID = intent.LatestCharge.ID
		}
	}
	return event, nil
}
