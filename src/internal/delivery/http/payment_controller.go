package http

import (
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/policy"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/token"
	"greendrop-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) CreateIntent(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.CreateIntentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.CreateIntent", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.CreateIntent(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "CreateIntent", fiber.StatusOK, ctx)
}

// Webhook is unauthenticated; the signature header is the credential.
// The raw body must reach the verifier untouched.
func (c *PaymentController) Webhook(ctx *fiber.Ctx) error {
	payload := ctx.Body()
	signature := ctx.Get("Stripe-Signature")

	result := c.UseCase.HandleWebhook(ctx.Context(), payload, signature)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Webhook", fiber.StatusOK, ctx)
}

func caller(auth *token.Claim) policy.Caller {
	return policy.Caller{UserID: auth.UserID, Role: auth.Role}
}
