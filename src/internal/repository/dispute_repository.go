package repository

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type DisputeRepository struct {
	DB mysql.DBInterface
}

func NewDisputeRepository(db mysql.DBInterface) *DisputeRepository {
	return &DisputeRepository{
		DB: db,
	}
}

func (r *DisputeRepository) Create(ctx context.Context, dispute *entity.Dispute) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO disputes (id, order_id, user_id, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		dispute.ID, dispute.OrderID, dispute.UserID, dispute.Reason,
		dispute.Status, dispute.CreatedAt)
	return err
}

func (r *DisputeRepository) FindByID(ctx context.Context, id string) (*entity.Dispute, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var dispute entity.Dispute
	err = db.GetContext(ctx, &dispute, `SELECT * FROM disputes WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}

	return &dispute, nil
}

func (r *DisputeRepository) List(ctx context.Context) ([]entity.Dispute, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var disputes []entity.Dispute
	err = db.SelectContext(ctx, &disputes, `
		SELECT * FROM disputes
		ORDER BY status = 'open' DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}

	return disputes, nil
}

// Resolve closes an open dispute; resolving twice finds zero rows.
func (r *DisputeRepository) Resolve(ctx context.Context, disputeID, adminID, status, resolution string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE disputes
		SET status = ?, resolution = ?, resolved_by = ?, resolved_at = ?
		WHERE id = ? AND status = 'open'`,
		status, resolution, adminID, time.Now().UTC(), disputeID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
