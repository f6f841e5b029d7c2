package http

import (
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.CreateOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.CreateOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateOrder", fiber.StatusCreated, ctx)
}

func (c *OrderController) ListMyOrders(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ListOrdersRequest{
		UserID: auth.UserID,
		Status: ctx.Query("status"),
	}

	result := c.UseCase.ListMyOrders(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListMyOrders", fiber.StatusOK, ctx)
}

func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	request := new(model.AdminListOrdersRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("OrderController.ListOrders", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AdminListOrders(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListOrders", fiber.StatusOK, ctx)
}

func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.GetOrderRequest{
		OrderID: ctx.Params("id"),
	}

	result := c.UseCase.GetOrder(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetOrder", fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("id")

	result := c.UseCase.UpdateStatus(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateStatus", fiber.StatusOK, ctx)
}
