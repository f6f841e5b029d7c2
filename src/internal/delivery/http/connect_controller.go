package http

import (
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ConnectController struct {
	Log     log.Log
	UseCase *usecase.ConnectUseCase
}

func NewConnectController(useCase *usecase.ConnectUseCase, logger log.Log) *ConnectController {
	return &ConnectController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ConnectController) OnboardShop(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.OnboardShopRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ConnectController.OnboardShop", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	request.Origin = ctx.Get(fiber.HeaderOrigin)

	result := c.UseCase.OnboardShop(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "OnboardShop", fiber.StatusOK, ctx)
}

func (c *ConnectController) OnboardDriver(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.OnboardDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ConnectController.OnboardDriver", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	request.Origin = ctx.Get(fiber.HeaderOrigin)

	result := c.UseCase.OnboardDriver(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "OnboardDriver", fiber.StatusOK, ctx)
}

func (c *ConnectController) Dashboard(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.DashboardRequest{
		UserID: auth.UserID,
		ShopID: ctx.Query("shopId"),
	}

	result := c.UseCase.Dashboard(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dashboard", fiber.StatusOK, ctx)
}

func (c *ConnectController) DriverDashboard(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.DashboardRequest{
		UserID: auth.UserID,
	}

	result := c.UseCase.Dashboard(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "DriverDashboard", fiber.StatusOK, ctx)
}
