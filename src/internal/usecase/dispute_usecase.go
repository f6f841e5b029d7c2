package usecase

import (
	"context"
	"fmt"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type DisputeUseCase struct {
	Log          log.Log
	Validate     *validator.Validate
	DisputeStore DisputeStore
	OrderStore   OrderStore
}

func NewDisputeUseCase(logger log.Log, validate *validator.Validate, disputeStore DisputeStore, orderStore OrderStore) *DisputeUseCase {
	return &DisputeUseCase{
		Log:          logger,
		Validate:     validate,
		DisputeStore: disputeStore,
		OrderStore:   orderStore,
	}
}

func (c *DisputeUseCase) CreateDispute(ctx context.Context, request *model.CreateDisputeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("dispute-usecase", err.Error(), "CreateDispute-validation", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderStore.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "commande introuvable"
		result.Error = errObj
		c.Log.Error("dispute-usecase", fmt.Sprintf("order lookup failed: %v", err), "CreateDispute", request.OrderID)
		return result
	}

	if order.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "seul l'auteur de la commande peut ouvrir un litige"
		result.Error = errObj
		return result
	}

	dispute := &entity.Dispute{
		ID:        uuid.New().String(),
		OrderID:   request.OrderID,
		UserID:    request.UserID,
		Reason:    request.Reason,
		Status:    entity.DisputeOpen,
		CreatedAt: time.Now(),
	}

	if err := c.DisputeStore.Create(ctx, dispute); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("dispute-usecase", fmt.Sprintf("insert failed: %v", err), "CreateDispute", request.OrderID)
		return result
	}

	result.Data = dispute
	return result
}

func (c *DisputeUseCase) ListDisputes(ctx context.Context) utils.Result {
	var result utils.Result

	disputes, err := c.DisputeStore.List(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("dispute-usecase", fmt.Sprintf("list failed: %v", err), "ListDisputes", "")
		return result
	}

	result.Data = disputes
	return result
}

func (c *DisputeUseCase) ResolveDispute(ctx context.Context, request *model.ResolveDisputeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if _, err := c.DisputeStore.FindByID(ctx, request.DisputeID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "litige introuvable"
		result.Error = errObj
		c.Log.Error("dispute-usecase", fmt.Sprintf("dispute lookup failed: %v", err), "ResolveDispute", request.DisputeID)
		return result
	}

	ok, err := c.DisputeStore.Resolve(ctx, request.DisputeID, request.AdminID, request.Status, request.Resolution)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("dispute-usecase", fmt.Sprintf("resolve failed: %v", err), "ResolveDispute", request.DisputeID)
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "le litige a déjà été traité"
		result.Error = errObj
		return result
	}

	result.Data = map[string]string{"id": request.DisputeID, "status": request.Status}
	return result
}
