package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ZoneUseCase struct {
	Log       log.Log
	Validate  *validator.Validate
	ZoneStore ZoneStore
}

func NewZoneUseCase(logger log.Log, validate *validator.Validate, zoneStore ZoneStore) *ZoneUseCase {
	return &ZoneUseCase{
		Log:       logger,
		Validate:  validate,
		ZoneStore: zoneStore,
	}
}

func (c *ZoneUseCase) ListZones(ctx context.Context) utils.Result {
	var result utils.Result

	zones, err := c.ZoneStore.ListActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("zone-usecase", fmt.Sprintf("zone list failed: %v", err), "ListZones", "")
		return result
	}

	result.Data = zones
	return result
}

func (c *ZoneUseCase) UpsertZone(ctx context.Context, request *model.UpsertZoneRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("zone-usecase", err.Error(), "UpsertZone-validation", utils.ConvertString(request))
		return result
	}

	if !json.Valid([]byte(request.Polygon)) {
		errObj := httpError.NewBadRequest()
		errObj.Message = "le polygone doit être une géométrie GeoJSON valide"
		result.Error = errObj
		return result
	}

	now := time.Now()
	zone := &entity.DeliveryZone{
		ID:        request.ZoneID,
		Name:      request.Name,
		Polygon:   []byte(request.Polygon),
		Active:    request.Active,
		UpdatedBy: &request.AdminID,
		UpdatedAt: &now,
	}

	if zone.ID == "" {
		zone.ID = uuid.New().String()
		zone.CreatedAt = now
		if err := c.ZoneStore.Insert(ctx, zone); err != nil {
			errObj := httpError.NewInternalServerError()
			result.Error = errObj
			c.Log.Error("zone-usecase", fmt.Sprintf("insert failed: %v", err), "UpsertZone", zone.ID)
			return result
		}
		result.Data = zone
		return result
	}

	ok, err := c.ZoneStore.Update(ctx, zone)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("zone-usecase", fmt.Sprintf("update failed: %v", err), "UpsertZone", zone.ID)
		return result
	}
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = "zone de livraison introuvable"
		result.Error = errObj
		return result
	}

	result.Data = zone
	return result
}

func (c *ZoneUseCase) DeleteZone(ctx context.Context, zoneID string) utils.Result {
	var result utils.Result

	ok, err := c.ZoneStore.Delete(ctx, zoneID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("zone-usecase", fmt.Sprintf("delete failed: %v", err), "DeleteZone", zoneID)
		return result
	}
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = "zone de livraison introuvable"
		result.Error = errObj
		return result
	}

	result.Data = map[string]string{"id": zoneID}
	return result
}
