package repository

import (
	"context"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type NotificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, order_id, title, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.OrderID, n.Title, n.Body, n.CreatedAt)
	return err
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	err = db.SelectContext(ctx, &notifications, `
		SELECT * FROM notifications WHERE user_id = ?
		ORDER BY created_at DESC LIMIT 100`, userID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}
