package repository

import (
	"context"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type ReviewRepository struct {
	DB mysql.DBInterface
}

func NewReviewRepository(db mysql.DBInterface) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Exists(ctx context.Context, orderID, authorID, targetID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int
	err = db.GetContext(ctx, &count, `
		SELECT COUNT(1) FROM reviews
		WHERE order_id = ? AND author_id = ? AND target_id = ?`,
		orderID, authorID, targetID)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO reviews (id, order_id, author_id, target_id, target_type, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		review.ID, review.OrderID, review.AuthorID, review.TargetID,
		review.TargetType, review.Rating, review.Comment, review.CreatedAt)
	return err
}

func (r *ReviewRepository) ListForTarget(ctx context.Context, targetID string) ([]entity.Review, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var reviews []entity.Review
	err = db.SelectContext(ctx, &reviews, `
		SELECT * FROM reviews WHERE target_id = ? ORDER BY created_at DESC`,
		targetID)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
