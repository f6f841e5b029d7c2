package usecase

import (
	"context"
	"fmt"
	"strings"

	"greendrop-service/src/internal/gateway/payment"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/policy"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/iban"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ConnectUseCase handles payout account onboarding for merchants and
// drivers.
type ConnectUseCase struct {
	Log       log.Log
	Validate  *validator.Validate
	ShopStore ShopStore
	UserStore UserStore
	Gateway   payment.Gateway
	Config    *viper.Viper
}

func NewConnectUseCase(
	logger log.Log,
	validate *validator.Validate,
	shopStore ShopStore,
	userStore UserStore,
	gateway payment.Gateway,
	cfg *viper.Viper,
) *ConnectUseCase {
	return &ConnectUseCase{
		Log:       logger,
		Validate:  validate,
		ShopStore: shopStore,
		UserStore: userStore,
		Gateway:   gateway,
		Config:    cfg,
	}
}

func (c *ConnectUseCase) OnboardShop(ctx context.Context, caller policy.Caller, request *model.OnboardShopRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("connect-usecase", err.Error(), "OnboardShop-validation", utils.ConvertString(request))
		return result
	}

	shop, err := c.ShopStore.FindByID(ctx, request.ShopID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "boutique introuvable"
		result.Error = errObj
		c.Log.Error("connect-usecase", fmt.Sprintf("shop lookup failed: %v", err), "OnboardShop", request.ShopID)
		return result
	}

	if !policy.CanManageShop(caller, shop.OwnerID) {
		errObj := httpError.NewForbidden()
		errObj.Message = "vous n'êtes pas autorisé à gérer cette boutique"
		result.Error = errObj
		return result
	}

	user, err := c.UserStore.FindByID(ctx, caller.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "utilisateur introuvable"
		result.Error = errObj
		return result
	}

	accountID := ""
	createdHere := false
	if shop.StripeAccountID != nil && *shop.StripeAccountID != "" {
		accountID = *shop.StripeAccountID
	} else {
		accountID, err = c.Gateway.CreateAccount(ctx, payment.AccountParams{
			Country: "FR",
			Email:   user.Email,
			Metadata: map[string]string{
				"shop_id":  shop.ID,
				"owner_id": shop.OwnerID,
			},
		})
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "impossible de créer le compte de paiement"
			result.Error = errObj
			c.Log.Error("connect-usecase", fmt.Sprintf("account creation failed: %v", err), "OnboardShop", shop.ID)
			return result
		}
		createdHere = true
	}

	if request.IBAN != "" {
		if errResult := c.attachIBAN(ctx, accountID, request.IBAN, accountHolder(request.FirstName, request.LastName, user.FullName), createdHere); errResult != nil {
			return *errResult
		}
	}

	if createdHere {
		if err := c.ShopStore.SetStripeAccount(ctx, shop.ID, accountID); err != nil {
			errObj := httpError.NewInternalServerError()
			result.Error = errObj
			c.Log.Error("connect-usecase", fmt.Sprintf("account persist failed: %v", err), "OnboardShop", shop.ID)
			return result
		}
	}

	url, err := c.accountLink(ctx, accountID, request.Origin)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "impossible de générer le lien d'onboarding"
		result.Error = errObj
		c.Log.Error("connect-usecase", fmt.Sprintf("account link failed: %v", err), "OnboardShop", accountID)
		return result
	}

	result.Data = &model.OnboardResponse{AccountID: accountID, OnboardingURL: url}
	return result
}

func (c *ConnectUseCase) OnboardDriver(ctx context.Context, request *model.OnboardDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("connect-usecase", err.Error(), "OnboardDriver-validation", utils.ConvertString(request))
		return result
	}

	driver, err := c.UserStore.FindDriver(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "profil livreur introuvable"
		result.Error = errObj
		c.Log.Error("connect-usecase", fmt.Sprintf("driver lookup failed: %v", err), "OnboardDriver", request.UserID)
		return result
	}

	user, err := c.UserStore.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "utilisateur introuvable"
		result.Error = errObj
		return result
	}

	accountID := ""
	createdHere := false
	if driver.StripeAccountID != nil && *driver.StripeAccountID != "" {
		accountID = *driver.StripeAccountID
	} else {
		accountID, err = c.Gateway.CreateAccount(ctx, payment.AccountParams{
			Country: "FR",
			Email:   user.Email,
			Metadata: map[string]string{
				"driver_id": driver.DriverID,
			},
		})
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "impossible de créer le compte de paiement"
			result.Error = errObj
			c.Log.Error("connect-usecase", fmt.Sprintf("account creation failed: %v", err), "OnboardDriver", driver.DriverID)
			return result
		}
		createdHere = true
	}

	if request.IBAN != "" {
		if errResult := c.attachIBAN(ctx, accountID, request.IBAN, accountHolder(request.FirstName, request.LastName, user.FullName), createdHere); errResult != nil {
			return *errResult
		}
	}

	if createdHere {
		if err := c.UserStore.SetDriverStripeAccount(ctx, driver.DriverID, accountID); err != nil {
			errObj := httpError.NewInternalServerError()
			result.Error = errObj
			c.Log.Error("connect-usecase", fmt.Sprintf("account persist failed: %v", err), "OnboardDriver", driver.DriverID)
			return result
		}
	}

	url, err := c.accountLink(ctx, accountID, request.Origin)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "impossible de générer le lien d'onboarding"
		result.Error = errObj
		c.Log.Error("connect-usecase", fmt.Sprintf("account link failed: %v", err), "OnboardDriver", accountID)
		return result
	}

	result.Data = &model.OnboardResponse{AccountID: accountID, OnboardingURL: url}
	return result
}

func (c *ConnectUseCase) Dashboard(ctx context.Context, caller policy.Caller, request *model.DashboardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	accountID := ""
	if request.ShopID != "" {
		shop, err := c.ShopStore.FindByID(ctx, request.ShopID)
		if err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = "boutique introuvable"
			result.Error = errObj
			return result
		}
		if !policy.CanManageShop(caller, shop.OwnerID) {
			errObj := httpError.NewForbidden()
			errObj.Message = "vous n'êtes pas autorisé à gérer cette boutique"
			result.Error = errObj
			return result
		}
		if shop.StripeAccountID != nil {
			accountID = *shop.StripeAccountID
		}
	} else {
		driver, err := c.UserStore.FindDriver(ctx, caller.UserID)
		if err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = "profil livreur introuvable"
			result.Error = errObj
			return result
		}
		if driver.StripeAccountID != nil {
			accountID = *driver.StripeAccountID
		}
	}

	if accountID == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "aucun compte de paiement associé"
		result.Error = errObj
		return result
	}

	url, err := c.Gateway.CreateLoginLink(ctx, accountID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "impossible de générer le lien du tableau de bord"
		result.Error = errObj
		c.Log.Error("connect-usecase", fmt.Sprintf("login link failed: %v", err), "Dashboard", accountID)
		return result
	}

	result.Data = &model.DashboardResponse{URL: url}
	return result
}

// attachIBAN validates and attaches the external bank account. When the
// connected account was created in this call, a failed attach rolls the
// account back so a retry starts clean.
func (c *ConnectUseCase) attachIBAN(ctx context.Context, accountID, rawIBAN, holderName string, createdHere bool) *utils.Result {
	if err := iban.Validate(rawIBAN); err != nil {
		if createdHere {
			c.rollbackAccount(ctx, accountID)
		}
		errObj := httpError.NewBadRequest()
		errObj.Message = "IBAN invalide"
		return &utils.Result{Error: errObj}
	}

	if err := c.Gateway.AttachBankAccount(ctx, accountID, rawIBAN, holderName); err != nil {
		if createdHere {
			c.rollbackAccount(ctx, accountID)
		}
		errObj := httpError.NewBadRequest()
		errObj.Message = "le compte bancaire a été refusé"
		c.Log.Error("connect-usecase", fmt.Sprintf("bank account attach failed: %v", err), "attachIBAN", accountID)
		return &utils.Result{Error: errObj}
	}

	return nil
}

func (c *ConnectUseCase) rollbackAccount(ctx context.Context, accountID string) {
	if err := c.Gateway.DeleteAccount(ctx, accountID); err != nil {
		c.Log.Error("connect-usecase", fmt.Sprintf("account rollback failed: %v", err), "rollbackAccount", accountID)
	}
}

func (c *ConnectUseCase) accountLink(ctx context.Context, accountID, origin string) (string, error) {
	base := strings.TrimRight(origin, "/")
	if base == "" {
		base = strings.TrimRight(c.Config.GetString("app.base_url"), "/")
	}
	if base == "" {
		base = "https://admin.greendrop.fr"
	}
	return c.Gateway.CreateAccountLink(ctx, accountID, base+"/onboarding/refresh", base+"/onboarding/complete")
}

func accountHolder(firstName, lastName, fallback string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		return fallback
	}
	return name
}
