package usecase

import (
	"context"
	"fmt"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type UserUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	UserStore         UserStore
	NotificationStore NotificationStore
}

func NewUserUseCase(logger log.Log, validate *validator.Validate, userStore UserStore, notificationStore NotificationStore) *UserUseCase {
	return &UserUseCase{
		Log:               logger,
		Validate:          validate,
		UserStore:         userStore,
		NotificationStore: notificationStore,
	}
}

func (c *UserUseCase) GetProfile(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "GetProfile-validation", utils.ConvertString(request))
		return result
	}

	user, err := c.UserStore.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "utilisateur introuvable"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("user lookup failed: %v", err), "GetProfile", request.ID)
		return result
	}

	result.Data = &model.UserResponse{
		ID:           user.UserID,
		Name:         user.FullName,
		Email:        user.Email,
		Role:         user.EffectiveRole(),
		MobileNumber: user.MobileNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	return result
}

func (c *UserUseCase) ListDrivers(ctx context.Context, verificationStatus string) utils.Result {
	var result utils.Result

	if verificationStatus != "" {
		switch verificationStatus {
		case entity.VerificationPending, entity.VerificationApproved, entity.VerificationRejected:
		default:
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("statut de vérification inconnu: %s", verificationStatus)
			result.Error = errObj
			return result
		}
	}

	drivers, err := c.UserStore.ListDrivers(ctx, verificationStatus)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("driver list failed: %v", err), "ListDrivers", verificationStatus)
		return result
	}

	result.Data = drivers
	return result
}

func (c *UserUseCase) VerifyDriver(ctx context.Context, request *model.VerifyDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if _, err := c.UserStore.FindDriver(ctx, request.DriverID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "profil livreur introuvable"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("driver lookup failed: %v", err), "VerifyDriver", request.DriverID)
		return result
	}

	if err := c.UserStore.SetDriverVerification(ctx, request.DriverID, request.Status, request.Note); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("verification update failed: %v", err), "VerifyDriver", request.DriverID)
		return result
	}

	result.Data = map[string]string{"driverId": request.DriverID, "status": request.Status}
	return result
}

func (c *UserUseCase) ListMyNotifications(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	notifications, err := c.NotificationStore.ListForUser(ctx, userID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("notification list failed: %v", err), "ListMyNotifications", userID)
		return result
	}

	result.Data = notifications
	return result
}
