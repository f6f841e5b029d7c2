package http

import (
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReviewController struct {
	Log      log.Log
	Reviews  *usecase.ReviewUseCase
	Disputes *usecase.DisputeUseCase
}

func NewReviewController(reviews *usecase.ReviewUseCase, disputes *usecase.DisputeUseCase, logger log.Log) *ReviewController {
	return &ReviewController{
		Log:      logger,
		Reviews:  reviews,
		Disputes: disputes,
	}
}

func (c *ReviewController) CreateReview(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateReviewRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReviewController.CreateReview", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.AuthorID = auth.UserID

	result := c.Reviews.CreateReview(ctx.Context(), caller(auth), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateReview", fiber.StatusCreated, ctx)
}

func (c *ReviewController) ListReviews(ctx *fiber.Ctx) error {
	request := &model.ListReviewsRequest{
		TargetID: ctx.Params("id"),
	}

	result := c.Reviews.ListReviews(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListReviews", fiber.StatusOK, ctx)
}

func (c *ReviewController) CreateDispute(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateDisputeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReviewController.CreateDispute", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.Disputes.CreateDispute(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateDispute", fiber.StatusCreated, ctx)
}

func (c *ReviewController) ListDisputes(ctx *fiber.Ctx) error {
	result := c.Disputes.ListDisputes(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ListDisputes", fiber.StatusOK, ctx)
}

func (c *ReviewController) ResolveDispute(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.ResolveDisputeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReviewController.ResolveDispute", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.DisputeID = ctx.Params("id")
	request.AdminID = auth.UserID

	result := c.Disputes.ResolveDispute(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "ResolveDispute", fiber.StatusOK, ctx)
}
