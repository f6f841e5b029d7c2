package usecase

import (
	"context"
	"fmt"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/gateway/payment"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/pricing"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type PaymentUseCase struct {
	Log        log.Log
	Validate   *validator.Validate
	OrderStore OrderStore
	ShopStore  ShopStore
	UserStore  UserStore
	Gateway    payment.Gateway
	Pricing    *pricing.Policy
	Config     *viper.Viper
	Notifier   StatusNotifier
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderStore OrderStore,
	shopStore ShopStore,
	userStore UserStore,
	gateway payment.Gateway,
	pricingPolicy *pricing.Policy,
	cfg *viper.Viper,
	notifier StatusNotifier,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:        logger,
		Validate:   validate,
		OrderStore: orderStore,
		ShopStore:  shopStore,
		UserStore:  userStore,
		Gateway:    gateway,
		Pricing:    pricingPolicy,
		Config:     cfg,
		Notifier:   notifier,
	}
}

func (c *PaymentUseCase) CreateIntent(ctx context.Context, request *model.CreateIntentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", err.Error(), "CreateIntent-validation", utils.ConvertString(request))
		return result
	}

	user, err := c.UserStore.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "utilisateur introuvable"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("user lookup failed: %v", err), "CreateIntent", request.UserID)
		return result
	}

	customerID, errResult := c.ensureCustomer(ctx, user)
	if errResult != nil {
		return *errResult
	}

	currency := request.Currency
	if currency == "" {
		currency = c.Pricing.Currency
	}
	amountMinor := pricing.MinorUnits(request.Amount)

	params := payment.IntentParams{
		AmountMinor: amountMinor,
		Currency:    currency,
		CustomerID:  customerID,
		Metadata:    map[string]string{"user_id": user.UserID},
	}
	if request.OrderID != "" {
		params.Metadata["order_id"] = request.OrderID
	}
	if request.DriverID != "" {
		params.Metadata["driver_id"] = request.DriverID
	}

	if request.ShopID != "" {
		shop, err := c.ShopStore.FindByID(ctx, request.ShopID)
		if err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = "boutique introuvable"
			result.Error = errObj
			c.Log.Error("payment-usecase", fmt.Sprintf("shop lookup failed: %v", err), "CreateIntent", request.ShopID)
			return result
		}
		if shop.StripeAccountID != nil && *shop.StripeAccountID != "" {
			params.DestinationAccount = *shop.StripeAccountID
			params.DestinationMinor = c.Pricing.MerchantSplit(amountMinor)
		}
	}

	if request.UseSavedCard {
		paymentMethod, err := c.Gateway.LatestCardPaymentMethod(ctx, customerID)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "impossible de récupérer la carte enregistrée"
			result.Error = errObj
			c.Log.Error("payment-usecase", fmt.Sprintf("payment method lookup failed: %v", err), "CreateIntent", customerID)
			return result
		}
		if paymentMethod != "" {
			params.PaymentMethod = paymentMethod
			params.ConfirmOffSession = true
		}
	}

	intent, err := c.Gateway.CreateIntent(ctx, params)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("échec de création du paiement: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("intent creation failed: %v", err), "CreateIntent", customerID)
		return result
	}

	if request.OrderID != "" {
		order, err := c.OrderStore.FindByID(ctx, request.OrderID)
		if err != nil || order.UserID != request.UserID {
			c.Log.Error("payment-usecase", "order linkage refused", "CreateIntent", request.OrderID)
		} else if err := c.OrderStore.SetPaymentIntent(ctx, request.OrderID, intent.ID); err != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("intent linkage failed: %v", err), "CreateIntent", request.OrderID)
		}
	}

	ephemeralKey, err := c.Gateway.CreateEphemeralKey(ctx, customerID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("échec de création du paiement: %v", err)
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("ephemeral key creation failed: %v", err), "CreateIntent", customerID)
		return result
	}

	result.Data = &model.CreateIntentResponse{
		ClientSecret:   intent.ClientSecret,
		EphemeralKey:   ephemeralKey,
		CustomerID:     customerID,
		IntentID:       intent.ID,
		Status:         intent.Status,
		PublishableKey: c.Config.GetString("stripe.publishable_key"),
	}
	return result
}

// HandleWebhook processes a signed gateway event. Once the payment
// status is recorded the response is always success, so the gateway's
// redelivery never duplicates the order update; the payout has its own
// claim guard.
func (c *PaymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) utils.Result {
	var result utils.Result

	event, err := c.Gateway.VerifyEvent(payload, signatureHeader)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "signature de webhook invalide"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("webhook verification failed: %v", err), "HandleWebhook", "")
		return result
	}

	switch event.Type {
	case payment.EventPaymentSucceeded:
		return c.handlePaymentSucceeded(ctx, event)
	case payment.EventPaymentFailed:
		return c.handlePaymentFailed(ctx, event)
	default:
		c.Log.Info("payment-usecase", fmt.Sprintf("ignoring event type %s", event.Type), "HandleWebhook", "")
		result.Data = &model.WebhookAck{Received: true}
		return result
	}
}

func (c *PaymentUseCase) handlePaymentSucceeded(ctx context.Context, event *payment.Event) utils.Result {
	var result utils.Result

	order, err := c.OrderStore.FindByPaymentIntentID(ctx, event.IntentID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("order lookup failed: %v", err), "handlePaymentSucceeded", event.IntentID)
		return result
	}
	if order == nil {
		// webhook arrived before the order linkage; accepted race
		c.Log.Info("payment-usecase", "no order linked to intent yet", "handlePaymentSucceeded", event.IntentID)
		result.Data = &model.WebhookAck{Received: true}
		return result
	}

	settled, err := c.OrderStore.MarkPaid(ctx, order.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("mark paid failed: %v", err), "handlePaymentSucceeded", order.ID)
		return result
	}

	c.attemptDriverPayout(ctx, order, event)

	// only the delivery that settled the order notifies the customer
	if settled && c.Notifier != nil {
		c.Notifier.Dispatch(&model.OrderStatusNotice{
			OrderID: order.ID,
			UserID:  order.UserID,
			Status:  entity.PaymentStatusPaid,
			Title:   fmt.Sprintf("Commande %s", order.Reference),
			Body:    "Votre paiement a été confirmé.",
		})
	}

	result.Data = &model.WebhookAck{Received: true}
	return result
}

// attemptDriverPayout transfers the delivery fee to the assigned
// driver's connected account, at most once per order. Failures are
// recorded on the order and never fail the webhook.
func (c *PaymentUseCase) attemptDriverPayout(ctx context.Context, order *entity.Order, event *payment.Event) {
	if order.DriverID == nil || *order.DriverID == "" || order.DeliveryFee <= 0 {
		return
	}
	if order.DriverTransferID != nil && *order.DriverTransferID != "" {
		return
	}

	driver, err := c.UserStore.FindDriver(ctx, *order.DriverID)
	if err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("driver lookup failed: %v", err), "attemptDriverPayout", *order.DriverID)
		return
	}
	if driver.StripeAccountID == nil || *driver.StripeAccountID == "" {
		c.Log.Info("payment-usecase", "driver has no payout account", "attemptDriverPayout", driver.DriverID)
		return
	}

	claimed, err := c.OrderStore.ClaimDriverPayout(ctx, order.ID)
	if err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("payout claim failed: %v", err), "attemptDriverPayout", order.ID)
		return
	}
	if !claimed {
		c.Log.Info("payment-usecase", "payout already claimed for order", "attemptDriverPayout", order.ID)
		return
	}

	transferID, err := c.Gateway.CreateTransfer(ctx, payment.TransferParams{
		AmountMinor:        pricing.MinorUnits(order.DeliveryFee),
		Currency:           c.Pricing.Currency,
		DestinationAccount: *driver.StripeAccountID,
		SourceCharge:       event.ChargeID,
		Metadata: map[string]string{
			"order_id":  order.ID,
			"driver_id": driver.DriverID,
		},
	})
	if err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("driver transfer failed: %v", err), "attemptDriverPayout", order.ID)
		if recordErr := c.OrderStore.RecordDriverTransferError(ctx, order.ID, err.Error()); recordErr != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("transfer error record failed: %v", recordErr), "attemptDriverPayout", order.ID)
		}
		return
	}

	if err := c.OrderStore.RecordDriverTransfer(ctx, order.ID, transferID); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("transfer record failed: %v", err), "attemptDriverPayout", order.ID)
	}
}

func (c *PaymentUseCase) handlePaymentFailed(ctx context.Context, event *payment.Event) utils.Result {
	var result utils.Result

	order, err := c.OrderStore.FindByPaymentIntentID(ctx, event.IntentID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("order lookup failed: %v", err), "handlePaymentFailed", event.IntentID)
		return result
	}
	if order != nil {
		recorded, err := c.OrderStore.MarkPaymentFailed(ctx, order.ID)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			result.Error = errObj
			c.Log.Error("payment-usecase", fmt.Sprintf("mark failed errored: %v", err), "handlePaymentFailed", order.ID)
			return result
		}
		if !recorded {
			c.Log.Info("payment-usecase", "order already settled, failure event ignored", "handlePaymentFailed", order.ID)
		}
	}

	result.Data = &model.WebhookAck{Received: true}
	return result
}

func (c *PaymentUseCase) ensureCustomer(ctx context.Context, user *entity.User) (string, *utils.Result) {
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	customerID, err := c.Gateway.CreateCustomer(ctx, user.FullName, user.Email)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "impossible de créer le client de paiement"
		c.Log.Error("payment-usecase", fmt.Sprintf("customer creation failed: %v", err), "ensureCustomer", user.UserID)
		return "", &utils.Result{Error: errObj}
	}

	if err := c.UserStore.SetStripeCustomer(ctx, user.UserID, customerID); err != nil {
		errObj := httpError.NewInternalServerError()
		c.Log.Error("payment-usecase", fmt.Sprintf("customer persist failed: %v", err), "ensureCustomer", user.UserID)
		return "", &utils.Result{Error: errObj}
	}

	return customerID, nil
}
