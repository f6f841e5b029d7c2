package repository

import (
	"context"
	"database/sql"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"

	"github.com/google/uuid"
)

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

// Create persists the order, its items and the first activity entry in
// one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order, items []entity.OrderItem) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, reference, user_id, shop_id, subtotal, delivery_fee, total,
			status, payment_method, payment_status, delivery_address,
			delivery_lat, delivery_lng, notes, estimated_delivery_time,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Reference, order.UserID, order.ShopID,
		order.Subtotal, order.DeliveryFee, order.Total,
		order.Status, order.PaymentMethod, order.PaymentStatus,
		order.DeliveryAddress, order.DeliveryLat, order.DeliveryLng,
		order.Notes, order.EstimatedDeliveryTime,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES (?, ?, ?, ?, ?)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_activity (id, order_id, actor_id, action, note, created_at)
		VALUES (?, ?, ?, ?, NULL, ?)`,
		uuid.NewString(), order.ID, order.UserID, "order_created", order.CreatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	err = db.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *OrderRepository) FindItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var items []entity.OrderItem
	err = db.SelectContext(ctx, &items,
		`SELECT * FROM order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID, status string) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `SELECT * FROM orders WHERE user_id = ?`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	err = db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

type OrderFilter struct {
	Status   string
	ShopID   string
	DriverID string
	Limit    int
}

func (r *OrderRepository) FindAll(ctx context.Context, filter OrderFilter) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM orders WHERE 1=1`
	args := []interface{}{}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.ShopID != "" {
		query += ` AND shop_id = ?`
		args = append(args, filter.ShopID)
	}
	if filter.DriverID != "" {
		query += ` AND driver_id = ?`
		args = append(args, filter.DriverID)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	var orders []entity.Order
	err = db.SelectContext(ctx, &orders, query, args...)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// FindByPaymentIntentID resolves the order linked to a gateway intent.
// At most one match is expected; nil means the linkage has not been
// written yet.
func (r *OrderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	err = db.GetContext(ctx, &order,
		`SELECT * FROM orders WHERE payment_intent_id = ? LIMIT 1`, intentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateStatusFrom is a compare-and-swap on the status column. It
// returns false when the order was concurrently moved off fromStatus.
func (r *OrderRepository) UpdateStatusFrom(ctx context.Context, orderID, fromStatus, toStatus string, deliveredAt *time.Time) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, delivered_at = COALESCE(?, delivered_at), updated_at = ?
		WHERE id = ? AND status = ?`,
		toStatus, deliveredAt, time.Now().UTC(), orderID, fromStatus,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *OrderRepository) AssignDriver(ctx context.Context, orderID, driverID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE orders SET driver_id = ?, updated_at = ? WHERE id = ?`,
		driverID, time.Now().UTC(), orderID)
	return err
}

func (r *OrderRepository) SetPaymentIntent(ctx context.Context, orderID, intentID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE orders SET payment_intent_id = ?, updated_at = ? WHERE id = ?`,
		intentID, time.Now().UTC(), orderID)
	return err
}

// MarkPaid flips the payment status to paid exactly once per order; a
// redelivered webhook finds zero affected rows.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE orders SET payment_status = ?, updated_at = ?
		WHERE id = ? AND payment_status <> ?`,
		entity.PaymentStatusPaid, time.Now().UTC(), orderID, entity.PaymentStatusPaid,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// MarkPaymentFailed records a failed payment unless the order has
// already settled; the gateway does not order its events, so a failed
// event may arrive after the succeeded one.
func (r *OrderRepository) MarkPaymentFailed(ctx context.Context, orderID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE orders SET payment_status = ?, updated_at = ?
		WHERE id = ? AND payment_status <> ?`,
		entity.PaymentStatusFailed, time.Now().UTC(), orderID, entity.PaymentStatusPaid)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ClaimDriverPayout atomically claims the single payout attempt for an
// order. The first caller wins; every retry or redelivered event sees
// zero affected rows and must not create a transfer.
func (r *OrderRepository) ClaimDriverPayout(ctx context.Context, orderID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE orders SET payout_claimed_at = ?
		WHERE id = ? AND payout_claimed_at IS NULL`,
		time.Now().UTC(), orderID,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *OrderRepository) RecordDriverTransfer(ctx context.Context, orderID, transferID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.ExecContext(ctx, `
		UPDATE orders
		SET driver_transfer_id = ?, driver_paid_at = ?, driver_transfer_error = NULL, updated_at = ?
		WHERE id = ?`,
		transferID, now, now, orderID)
	return err
}

func (r *OrderRepository) RecordDriverTransferError(ctx context.Context, orderID, message string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.ExecContext(ctx, `
		UPDATE orders
		SET driver_transfer_error = ?, driver_transfer_failed_at = ?, updated_at = ?
		WHERE id = ?`,
		message, now, now, orderID)
	return err
}

func (r *OrderRepository) AppendActivity(ctx context.Context, orderID, actorID, action, note string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO order_activity (id, order_id, actor_id, action, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), orderID, actorID, action, notePtr, time.Now().UTC())
	return err
}
