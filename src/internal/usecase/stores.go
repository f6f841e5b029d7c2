package usecase

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/repository"
)

// Store contracts consumed by the usecases. The repository package
// provides the MySQL implementations; tests substitute mocks.

type OrderStore interface {
	Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindItems(ctx context.Context, orderID string) ([]entity.OrderItem, error)
	FindByUser(ctx context.Context, userID, status string) ([]entity.Order, error)
	FindAll(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error)
	UpdateStatusFrom(ctx context.Context, orderID, fromStatus, toStatus string, deliveredAt *time.Time) (bool, error)
	AssignDriver(ctx context.Context, orderID, driverID string) error
	SetPaymentIntent(ctx context.Context, orderID, intentID string) error
	MarkPaid(ctx context.Context, orderID string) (bool, error)
	MarkPaymentFailed(ctx context.Context, orderID string) (bool, error)
	ClaimDriverPayout(ctx context.Context, orderID string) (bool, error)
	RecordDriverTransfer(ctx context.Context, orderID, transferID string) error
	RecordDriverTransferError(ctx context.Context, orderID, message string) error
	AppendActivity(ctx context.Context, orderID, actorID, action, note string) error
}

type ShopStore interface {
	FindByID(ctx context.Context, id string) (*entity.Shop, error)
	FindProduct(ctx context.Context, productID string) (*entity.Product, error)
	FindActive(ctx context.Context) ([]entity.Shop, error)
	SetStripeAccount(ctx context.Context, shopID, accountID string) error
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	SetStripeCustomer(ctx context.Context, userID, customerID string) error
	FindDriver(ctx context.Context, driverID string) (*entity.Driver, error)
	ListDrivers(ctx context.Context, verificationStatus string) ([]entity.Driver, error)
	SetDriverStripeAccount(ctx context.Context, driverID, accountID string) error
	SetDriverVerification(ctx context.Context, driverID, status, note string) error
}

type ReviewStore interface {
	Exists(ctx context.Context, orderID, authorID, targetID string) (bool, error)
	Create(ctx context.Context, review *entity.Review) error
	ListForTarget(ctx context.Context, targetID string) ([]entity.Review, error)
}

type DisputeStore interface {
	Create(ctx context.Context, dispute *entity.Dispute) error
	FindByID(ctx context.Context, id string) (*entity.Dispute, error)
	List(ctx context.Context) ([]entity.Dispute, error)
	Resolve(ctx context.Context, disputeID, adminID, status, resolution string) (bool, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListForUser(ctx context.Context, userID string) ([]entity.Notification, error)
}

type ZoneStore interface {
	ListActive(ctx context.Context) ([]entity.DeliveryZone, error)
	Insert(ctx context.Context, zone *entity.DeliveryZone) error
	Update(ctx context.Context, zone *entity.DeliveryZone) (bool, error)
	Delete(ctx context.Context, zoneID string) (bool, error)
}

// StatusNotifier is the best-effort push channel invoked on status
// changes.
type StatusNotifier interface {
	Dispatch(notice *model.OrderStatusNotice)
}

// EventProducer publishes domain events to the broker.
type EventProducer interface {
	SendOrderCreated(event *model.OrderCreatedEvent) error
	SendOrderStatus(event *model.OrderStatusEvent) error
}
