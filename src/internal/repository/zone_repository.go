package repository

import (
	"context"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/databases/mysql"
)

type ZoneRepository struct {
	DB mysql.DBInterface
}

func NewZoneRepository(db mysql.DBInterface) *ZoneRepository {
	return &ZoneRepository{
		DB: db,
	}
}

func (r *ZoneRepository) ListActive(ctx context.Context) ([]entity.DeliveryZone, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var zones []entity.DeliveryZone
	err = db.SelectContext(ctx, &zones,
		`SELECT * FROM delivery_zones WHERE active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}

	return zones, nil
}

func (r *ZoneRepository) Insert(ctx context.Context, zone *entity.DeliveryZone) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO delivery_zones (id, name, polygon, active, updated_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		zone.ID, zone.Name, zone.Polygon, zone.Active, zone.UpdatedBy, zone.CreatedAt)
	return err
}

func (r *ZoneRepository) Update(ctx context.Context, zone *entity.DeliveryZone) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE delivery_zones
		SET name = ?, polygon = ?, active = ?, updated_by = ?, updated_at = ?
		WHERE id = ?`,
		zone.Name, zone.Polygon, zone.Active, zone.UpdatedBy, time.Now().UTC(), zone.ID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *ZoneRepository) Delete(ctx context.Context, zoneID string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM delivery_zones WHERE id = ?`, zoneID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
