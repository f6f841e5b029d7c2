package usecase

import (
	"context"
	"testing"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNearbyFiltersAndSortsByDistance(t *testing.T) {
	shopStore := new(MockShopStore)
	useCase := NewShopUseCase(testLogger(), validator.New(), shopStore)

	// caller is at Châtelet; Orléans is about 111 km south
	shopStore.On("FindActive", mock.Anything).Return([]entity.Shop{
		{ID: "far", Name: "Orléans", Lat: 47.9029, Lng: 1.9093},
		{ID: "montmartre", Name: "Montmartre", Lat: 48.8867, Lng: 2.3431},
		{ID: "louvre", Name: "Louvre", Lat: 48.8606, Lng: 2.3376},
	}, nil)

	result := useCase.Nearby(context.Background(), &model.NearbyShopsRequest{
		Lat: 48.8589,
		Lng: 2.3469,
	})

	assert.Nil(t, result.Error)
	shops := result.Data.([]model.NearbyShop)
	assert.Len(t, shops, 2)
	assert.Equal(t, "louvre", shops[0].ID)
	assert.Equal(t, "montmartre", shops[1].ID)
	assert.Less(t, shops[0].DistanceKm, shops[1].DistanceKm)
}

func TestNearbyHonorsCustomRadius(t *testing.T) {
	shopStore := new(MockShopStore)
	useCase := NewShopUseCase(testLogger(), validator.New(), shopStore)

	shopStore.On("FindActive", mock.Anything).Return([]entity.Shop{
		{ID: "far", Name: "Orléans", Lat: 47.9029, Lng: 1.9093},
	}, nil)

	result := useCase.Nearby(context.Background(), &model.NearbyShopsRequest{
		Lat:    48.8589,
		Lng:    2.3469,
		Radius: 100,
	})

	assert.Nil(t, result.Error)
	shops := result.Data.([]model.NearbyShop)
	assert.Empty(t, shops)
}
