package middleware

import (
	"context"
	"strings"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/token"
	"greendrop-service/src/pkg/utils"

	httpError "greendrop-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

// UserFinder resolves the stored profile behind a verified token.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// VerifyBearer authenticates the request and stores the caller's claim
// in the request locals. The role always comes from the stored profile,
// never from the token.
func VerifyBearer(cfg *viper.Viper, users UserFinder, logger log.Log) fiber.Handler {
	secret := cfg.GetString("jwt.secret")
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return unauthorized(ctx)
		}

		claim, err := token.Parse(secret, tokenString)
		if err != nil {
			logger.Info("auth-middleware", "token rejected: "+err.Error(), "VerifyBearer", ctx.IP())
			return unauthorized(ctx)
		}

		user, err := users.FindByID(ctx.Context(), claim.UserID)
		if err != nil {
			logger.Info("auth-middleware", "unknown user on valid token", "VerifyBearer", claim.UserID)
			return unauthorized(ctx)
		}
		claim.Role = user.EffectiveRole()

		ctx.Locals("auth", claim)
		return ctx.Next()
	}
}

// GetUser returns the claim set by VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Claim {
	claim, _ := ctx.Locals("auth").(*token.Claim)
	return claim
}

// RequireRole gates a route on a role. Admins pass everywhere.
func RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil {
			return unauthorized(ctx)
		}
		if auth.Role != role && auth.Role != entity.RoleAdmin {
			errObj := httpError.NewForbidden()
			errObj.Message = "accès réservé"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func unauthorized(ctx *fiber.Ctx) error {
	return utils.ResponseError(httpError.NewUnauthorized(), ctx)
}
