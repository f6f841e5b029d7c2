package repository

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	err = db.GetContext(ctx, &user, `SELECT * FROM users WHERE user_id = ?`, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) SetStripeCustomer(ctx context.Context, userID, customerID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE users SET stripe_customer_id = ?, updated_at = ? WHERE user_id = ?`,
		customerID, time.Now().UTC(), userID)
	return err
}

func (r *UserRepository) FindDriver(ctx context.Context, driverID string) (*entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var driver entity.Driver
	err = db.GetContext(ctx, &driver,
		`SELECT * FROM drivers WHERE driver_id = ?`, driverID)
	if err != nil {
		return nil, err
	}

	return &driver, nil
}

func (r *UserRepository) ListDrivers(ctx context.Context, verificationStatus string) ([]entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM drivers`
	args := []interface{}{}
	if verificationStatus != "" {
		query += ` WHERE verification_status = ?`
		args = append(args, verificationStatus)
	}
	query += ` ORDER BY driver_id`

	var drivers []entity.Driver
	err = db.SelectContext(ctx, &drivers, query, args...)
	if err != nil {
		return nil, err
	}

	return drivers, nil
}

func (r *UserRepository) SetDriverStripeAccount(ctx context.Context, driverID, accountID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE drivers SET stripe_account_id = ? WHERE driver_id = ?`,
		accountID, driverID)
	return err
}

func (r *UserRepository) SetDriverVerification(ctx context.Context, driverID, status, note string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	_, err = db.ExecContext(ctx, `
		UPDATE drivers
		SET verification_status = ?, verification_note = ?, verified_at = ?
		WHERE driver_id = ?`,
		status, notePtr, time.Now().UTC(), driverID)
	return err
}
