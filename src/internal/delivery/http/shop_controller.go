package http

import (
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ShopController struct {
	Log     log.Log
	UseCase *usecase.ShopUseCase
}

func NewShopController(useCase *usecase.ShopUseCase, logger log.Log) *ShopController {
	return &ShopController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ShopController) Nearby(ctx *fiber.Ctx) error {
	request := new(model.NearbyShopsRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("ShopController.Nearby", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Nearby(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Nearby", fiber.StatusOK, ctx)
}
