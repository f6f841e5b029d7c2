package http

import (
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController groups the back-office endpoints: driver
// verification and delivery zone management.
type AdminController struct {
	Log   log.Log
	Users *usecase.UserUseCase
	Zones *usecase.ZoneUseCase
}

func NewAdminController(users *usecase.UserUseCase, zones *usecase.ZoneUseCase, logger log.Log) *AdminController {
	return &AdminController{
		Log:   logger,
		Users: users,
		Zones: zones,
	}
}

func (c *AdminController) ListDrivers(ctx *fiber.Ctx) error {
	result := c.Users.ListDrivers(ctx.Context(), ctx.Query("verificationStatus"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListDrivers", fiber.StatusOK, ctx)
}

func (c *AdminController) VerifyDriver(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.VerifyDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.VerifyDriver", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DriverID = ctx.Params("id")
	request.AdminID = auth.UserID

	result := c.Users.VerifyDriver(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "VerifyDriver", fiber.StatusOK, ctx)
}

func (c *AdminController) ListZones(ctx *fiber.Ctx) error {
	result := c.Zones.ListZones(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListZones", fiber.StatusOK, ctx)
}

func (c *AdminController) CreateZone(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.UpsertZoneRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.CreateZone", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.AdminID = auth.UserID

	result := c.Zones.UpsertZone(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateZone", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateZone(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.UpsertZoneRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateZone", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ZoneID = ctx.Params("id")
	request.AdminID = auth.UserID

	result := c.Zones.UpsertZone(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateZone", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteZone(ctx *fiber.Ctx) error {
	result := c.Zones.DeleteZone(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "DeleteZone", fiber.StatusOK, ctx)
}
