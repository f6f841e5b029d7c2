package repository

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type ShopRepository struct {
	DB mysql.DBInterface
}

func NewShopRepository(db mysql.DBInterface) *ShopRepository {
	return &ShopRepository{
		DB: db,
	}
}

func (r *ShopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var shop entity.Shop
	err = db.GetContext(ctx, &shop, `SELECT * FROM shops WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}

	return &shop, nil
}

func (r *ShopRepository) FindProduct(ctx context.Context, productID string) (*entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var product entity.Product
	err = db.GetContext(ctx, &product,
		`SELECT * FROM products WHERE id = ? AND active = 1`, productID)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *ShopRepository) FindActive(ctx context.Context) ([]entity.Shop, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var shops []entity.Shop
	err = db.SelectContext(ctx, &shops, `SELECT * FROM shops WHERE active = 1`)
	if err != nil {
		return nil, err
	}

	return shops, nil
}

func (r *ShopRepository) SetStripeAccount(ctx context.Context, shopID, accountID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE shops SET stripe_account_id = ?, updated_at = ? WHERE id = ?`,
		accountID, time.Now().UTC(), shopID)
	return err
}
