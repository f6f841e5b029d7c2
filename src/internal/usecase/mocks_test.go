package usecase

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/gateway/payment"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/repository"
	"greendrop-service/src/pkg/log"

	"github.com/stretchr/testify/mock"
)

func testLogger() log.Log {
	return log.Log{LogLevel: 3}
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *MockOrderStore) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderStore) FindItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderItem), args.Error(1)
}

func (m *MockOrderStore) FindByUser(ctx context.Context, userID, status string) ([]entity.Order, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderStore) FindAll(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderStore) FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatusFrom(ctx context.Context, orderID, fromStatus, toStatus string, deliveredAt *time.Time) (bool, error) {
	args := m.Called(ctx, orderID, fromStatus, toStatus, deliveredAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) AssignDriver(ctx context.Context, orderID, driverID string) error {
	args := m.Called(ctx, orderID, driverID)
	return args.Error(0)
}

func (m *MockOrderStore) SetPaymentIntent(ctx context.Context, orderID, intentID string) error {
	args := m.Called(ctx, orderID, intentID)
	return args.Error(0)
}

func (m *MockOrderStore) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) MarkPaymentFailed(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) ClaimDriverPayout(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) RecordDriverTransfer(ctx context.Context, orderID, transferID string) error {
	args := m.Called(ctx, orderID, transferID)
	return args.Error(0)
}

func (m *MockOrderStore) RecordDriverTransferError(ctx context.Context, orderID, message string) error {
	args := m.Called(ctx, orderID, message)
	return args.Error(0)
}

func (m *MockOrderStore) AppendActivity(ctx context.Context, orderID, actorID, action, note string) error {
	args := m.Called(ctx, orderID, actorID, action, note)
	return args.Error(0)
}

type MockShopStore struct {
	mock.Mock
}

func (m *MockShopStore) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Shop), args.Error(1)
}

func (m *MockShopStore) FindProduct(ctx context.Context, productID string) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockShopStore) FindActive(ctx context.Context) ([]entity.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Shop), args.Error(1)
}

func (m *MockShopStore) SetStripeAccount(ctx context.Context, shopID, accountID string) error {
	args := m.Called(ctx, shopID, accountID)
	return args.Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserStore) SetStripeCustomer(ctx context.Context, userID, customerID string) error {
	args := m.Called(ctx, userID, customerID)
	return args.Error(0)
}

func (m *MockUserStore) FindDriver(ctx context.Context, driverID string) (*entity.Driver, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Driver), args.Error(1)
}

func (m *MockUserStore) ListDrivers(ctx context.Context, verificationStatus string) ([]entity.Driver, error) {
	args := m.Called(ctx, verificationStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Driver), args.Error(1)
}

func (m *MockUserStore) SetDriverStripeAccount(ctx context.Context, driverID, accountID string) error {
	args := m.Called(ctx, driverID, accountID)
	return args.Error(0)
}

func (m *MockUserStore) SetDriverVerification(ctx context.Context, driverID, status, note string) error {
	args := m.Called(ctx, driverID, status, note)
	return args.Error(0)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Exists(ctx context.Context, orderID, authorID, targetID string) (bool, error) {
	args := m.Called(ctx, orderID, authorID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewStore) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewStore) ListForTarget(ctx context.Context, targetID string) ([]entity.Review, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCustomer(ctx context.Context, name, email string) (string, error) {
	args := m.Called(ctx, name, email)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateIntent(ctx context.Context, params payment.IntentParams) (*payment.Intent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func (m *MockGateway) LatestCardPaymentMethod(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateAccount(ctx context.Context, params payment.AccountParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockGateway) AttachBankAccount(ctx context.Context, accountID, iban, holderName string) error {
	args := m.Called(ctx, accountID, iban, holderName)
	return args.Error(0)
}

func (m *MockGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	args := m.Called(ctx, accountID, refreshURL, returnURL)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateLoginLink(ctx context.Context, accountID string) (string, error) {
	args := m.Called(ctx, accountID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateTransfer(ctx context.Context, params payment.TransferParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) VerifyEvent(payload []byte, signatureHeader string) (*payment.Event, error) {
	args := m.Called(payload, signatureHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Event), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(notice *model.OrderStatusNotice) {
	m.Called(notice)
}
