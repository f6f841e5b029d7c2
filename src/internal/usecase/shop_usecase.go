package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"greendrop-service/src/internal/model"
	"greendrop-service/src/pkg/geo"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const defaultNearbyRadiusKm = 5.0

type ShopUseCase struct {
	Log       log.Log
	Validate  *validator.Validate
	ShopStore ShopStore
}

func NewShopUseCase(logger log.Log, validate *validator.Validate, shopStore ShopStore) *ShopUseCase {
	return &ShopUseCase{
		Log:       logger,
		Validate:  validate,
		ShopStore: shopStore,
	}
}

// Nearby lists active shops within the radius, closest first.
func (c *ShopUseCase) Nearby(ctx context.Context, request *model.NearbyShopsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("shop-usecase", err.Error(), "Nearby-validation", utils.ConvertString(request))
		return result
	}

	radius := request.Radius
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}

	shops, err := c.ShopStore.FindActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("shop-usecase", fmt.Sprintf("shop list failed: %v", err), "Nearby", "")
		return result
	}

	nearby := make([]model.NearbyShop, 0, len(shops))
	for _, shop := range shops {
		distance := geo.DistanceKm(request.Lat, request.Lng, shop.Lat, shop.Lng)
		if distance > radius {
			continue
		}
		nearby = append(nearby, model.NearbyShop{
			ID:         shop.ID,
			Name:       shop.Name,
			Address:    shop.Address,
			Lat:        shop.Lat,
			Lng:        shop.Lng,
			DistanceKm: math.Round(distance*100) / 100,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	result.Data = nearby
	return result
}
