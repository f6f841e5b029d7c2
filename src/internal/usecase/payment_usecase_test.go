package usecase

import (
	"context"
	"errors"
	"testing"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/gateway/payment"
	"greendrop-service/src/internal/model"
	httpError "greendrop-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentUseCase(orderStore *MockOrderStore, shopStore *MockShopStore, userStore *MockUserStore, gateway *MockGateway) *PaymentUseCase {
	return NewPaymentUseCase(
		testLogger(),
		validator.New(),
		orderStore,
		shopStore,
		userStore,
		gateway,
		testPricing(),
		viper.New(),
		nil,
	)
}

func TestCreateIntentSplitsWithMerchantAccount(t *testing.T) {
	orderStore := new(MockOrderStore)
	shopStore := new(MockShopStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, shopStore, userStore, gateway)

	customerID := "cus_123"
	userStore.On("FindByID", mock.Anything, "user-1").Return(&entity.User{UserID: "user-1", StripeCustomerID: &customerID}, nil)
	merchantAccount := "acct_shop"
	shopStore.On("FindByID", mock.Anything, "shop-1").Return(&entity.Shop{ID: "shop-1", StripeAccountID: &merchantAccount}, nil)
	gateway.On("CreateIntent", mock.Anything, mock.MatchedBy(func(p payment.IntentParams) bool {
		return p.AmountMinor == 2000 &&
			p.Currency == "eur" &&
			p.DestinationAccount == "acct_shop" &&
			p.DestinationMinor == 1700
	})).Return(&payment.Intent{ID: "pi_1", ClientSecret: "secret", Status: "requires_payment_method"}, nil)
	gateway.On("CreateEphemeralKey", mock.Anything, "cus_123").Return("ek_1", nil)

	result := useCase.CreateIntent(context.Background(), &model.CreateIntentRequest{
		UserID: "user-1",
		Amount: 20.0,
		ShopID: "shop-1",
	})

	assert.Nil(t, result.Error)
	response := result.Data.(*model.CreateIntentResponse)
	assert.Equal(t, "pi_1", response.IntentID)
	assert.Equal(t, "cus_123", response.CustomerID)
	gateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateIntentCreatesCustomerOnce(t *testing.T) {
	orderStore := new(MockOrderStore)
	shopStore := new(MockShopStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, shopStore, userStore, gateway)

	userStore.On("FindByID", mock.Anything, "user-1").Return(&entity.User{UserID: "user-1", FullName: "Jean Dupont", Email: "jean@example.fr"}, nil)
	gateway.On("CreateCustomer", mock.Anything, "Jean Dupont", "jean@example.fr").Return("cus_new", nil)
	userStore.On("SetStripeCustomer", mock.Anything, "user-1", "cus_new").Return(nil)
	gateway.On("CreateIntent", mock.Anything, mock.Anything).Return(&payment.Intent{ID: "pi_1", ClientSecret: "secret"}, nil)
	gateway.On("CreateEphemeralKey", mock.Anything, "cus_new").Return("ek_1", nil)

	result := useCase.CreateIntent(context.Background(), &model.CreateIntentRequest{
		UserID: "user-1",
		Amount: 10.0,
	})

	assert.Nil(t, result.Error)
	userStore.AssertCalled(t, "SetStripeCustomer", mock.Anything, "user-1", "cus_new")
}

func TestCreateIntentEphemeralKeyFailure(t *testing.T) {
	orderStore := new(MockOrderStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), userStore, gateway)

	customerID := "cus_123"
	userStore.On("FindByID", mock.Anything, "user-1").Return(&entity.User{UserID: "user-1", StripeCustomerID: &customerID}, nil)
	gateway.On("CreateIntent", mock.Anything, mock.Anything).Return(&payment.Intent{ID: "pi_1", ClientSecret: "secret"}, nil)
	gateway.On("CreateEphemeralKey", mock.Anything, "cus_123").Return("", errors.New("gateway unavailable"))

	result := useCase.CreateIntent(context.Background(), &model.CreateIntentRequest{
		UserID: "user-1",
		Amount: 10.0,
	})

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 500, commonErr.Code)
}

func TestWebhookInvalidSignatureWritesNothing(t *testing.T) {
	orderStore := new(MockOrderStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), new(MockUserStore), gateway)

	gateway.On("VerifyEvent", mock.Anything, "bad-sig").Return(nil, errors.New("signature mismatch"))

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "bad-sig")

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, commonErr.Code)
	orderStore.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	orderStore.AssertNotCalled(t, "FindByPaymentIntentID", mock.Anything, mock.Anything)
}

func TestWebhookUnknownIntentStillAcks(t *testing.T) {
	orderStore := new(MockOrderStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), new(MockUserStore), gateway)

	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_orphan"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_orphan").Return(nil, nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	ack := result.Data.(*model.WebhookAck)
	assert.True(t, ack.Received)
	orderStore.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
}

func TestWebhookPaysDriverOnce(t *testing.T) {
	orderStore := new(MockOrderStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), userStore, gateway)

	driverID := "driver-1"
	driverAccount := "acct_driver"
	order := &entity.Order{ID: "order-1", UserID: "user-1", Reference: "GD-1", DriverID: &driverID, DeliveryFee: 5.0}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_1", ChargeID: "ch_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaid", mock.Anything, "order-1").Return(true, nil)
	userStore.On("FindDriver", mock.Anything, "driver-1").Return(&entity.Driver{DriverID: "driver-1", StripeAccountID: &driverAccount}, nil)
	orderStore.On("ClaimDriverPayout", mock.Anything, "order-1").Return(true, nil)
	gateway.On("CreateTransfer", mock.Anything, mock.MatchedBy(func(p payment.TransferParams) bool {
		return p.AmountMinor == 500 && p.DestinationAccount == "acct_driver" && p.SourceCharge == "ch_1"
	})).Return("tr_1", nil)
	orderStore.On("RecordDriverTransfer", mock.Anything, "order-1", "tr_1").Return(nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	orderStore.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestWebhookSkipsPayoutWhenAlreadyClaimed(t *testing.T) {
	orderStore := new(MockOrderStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), userStore, gateway)

	driverID := "driver-1"
	driverAccount := "acct_driver"
	order := &entity.Order{ID: "order-1", UserID: "user-1", DriverID: &driverID, DeliveryFee: 5.0}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaid", mock.Anything, "order-1").Return(false, nil)
	userStore.On("FindDriver", mock.Anything, "driver-1").Return(&entity.Driver{DriverID: "driver-1", StripeAccountID: &driverAccount}, nil)
	orderStore.On("ClaimDriverPayout", mock.Anything, "order-1").Return(false, nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	gateway.AssertNotCalled(t, "CreateTransfer", mock.Anything, mock.Anything)
}

func TestWebhookTransferFailureStillAcks(t *testing.T) {
	orderStore := new(MockOrderStore)
	userStore := new(MockUserStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), userStore, gateway)

	driverID := "driver-1"
	driverAccount := "acct_driver"
	order := &entity.Order{ID: "order-1", UserID: "user-1", DriverID: &driverID, DeliveryFee: 5.0}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_1", ChargeID: "ch_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaid", mock.Anything, "order-1").Return(true, nil)
	userStore.On("FindDriver", mock.Anything, "driver-1").Return(&entity.Driver{DriverID: "driver-1", StripeAccountID: &driverAccount}, nil)
	orderStore.On("ClaimDriverPayout", mock.Anything, "order-1").Return(true, nil)
	gateway.On("CreateTransfer", mock.Anything, mock.Anything).Return("", errors.New("insufficient funds"))
	orderStore.On("RecordDriverTransferError", mock.Anything, "order-1", "insufficient funds").Return(nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	ack := result.Data.(*model.WebhookAck)
	assert.True(t, ack.Received)
	orderStore.AssertCalled(t, "RecordDriverTransferError", mock.Anything, "order-1", "insufficient funds")
}

func TestWebhookPaymentFailed(t *testing.T) {
	orderStore := new(MockOrderStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), new(MockUserStore), gateway)

	order := &entity.Order{ID: "order-1", UserID: "user-1"}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentFailed, IntentID: "pi_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaymentFailed", mock.Anything, "order-1").Return(true, nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	orderStore.AssertCalled(t, "MarkPaymentFailed", mock.Anything, "order-1")
}

func TestWebhookFailedAfterPaidIsIgnored(t *testing.T) {
	orderStore := new(MockOrderStore)
	gateway := new(MockGateway)
	useCase := newPaymentUseCase(orderStore, new(MockShopStore), new(MockUserStore), gateway)

	order := &entity.Order{ID: "order-1", UserID: "user-1", PaymentStatus: entity.PaymentStatusPaid}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentFailed, IntentID: "pi_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaymentFailed", mock.Anything, "order-1").Return(false, nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	ack := result.Data.(*model.WebhookAck)
	assert.True(t, ack.Received)
}

func TestWebhookRedeliveredSuccessDoesNotRenotify(t *testing.T) {
	orderStore := new(MockOrderStore)
	gateway := new(MockGateway)
	notifier := new(MockNotifier)
	useCase := NewPaymentUseCase(
		testLogger(),
		validator.New(),
		orderStore,
		new(MockShopStore),
		new(MockUserStore),
		gateway,
		testPricing(),
		viper.New(),
		notifier,
	)

	order := &entity.Order{ID: "order-1", UserID: "user-1", Reference: "GD-1"}
	gateway.On("VerifyEvent", mock.Anything, "sig").Return(&payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_1"}, nil)
	orderStore.On("FindByPaymentIntentID", mock.Anything, "pi_1").Return(order, nil)
	orderStore.On("MarkPaid", mock.Anything, "order-1").Return(false, nil)

	result := useCase.HandleWebhook(context.Background(), []byte(`{}`), "sig")

	assert.Nil(t, result.Error)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
}
