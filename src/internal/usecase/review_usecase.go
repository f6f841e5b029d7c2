package usecase

import (
	"context"
	"fmt"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/policy"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReviewUseCase struct {
	Log         log.Log
	Validate    *validator.Validate
	ReviewStore ReviewStore
	OrderStore  OrderStore
}

func NewReviewUseCase(logger log.Log, validate *validator.Validate, reviewStore ReviewStore, orderStore OrderStore) *ReviewUseCase {
	return &ReviewUseCase{
		Log:         logger,
		Validate:    validate,
		ReviewStore: reviewStore,
		OrderStore:  orderStore,
	}
}

func (c *ReviewUseCase) CreateReview(ctx context.Context, caller policy.Caller, request *model.CreateReviewRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("review-usecase", err.Error(), "CreateReview-validation", utils.ConvertString(request))
		return result
	}

	order, err := c.OrderStore.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "commande introuvable"
		result.Error = errObj
		c.Log.Error("review-usecase", fmt.Sprintf("order lookup failed: %v", err), "CreateReview", request.OrderID)
		return result
	}

	if !policy.CanReviewOrder(caller, policy.OrderResource{OwnerID: order.UserID}) {
		errObj := httpError.NewForbidden()
		errObj.Message = "seul l'auteur de la commande peut laisser un avis"
		result.Error = errObj
		return result
	}

	if entity.NormalizeStatus(order.Status) != entity.StatusDelivered {
		errObj := httpError.NewBadRequest()
		errObj.Message = "la commande doit être livrée avant de laisser un avis"
		result.Error = errObj
		return result
	}

	exists, err := c.ReviewStore.Exists(ctx, request.OrderID, caller.UserID, request.TargetID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("review-usecase", fmt.Sprintf("existence check failed: %v", err), "CreateReview", request.OrderID)
		return result
	}
	if exists {
		errObj := httpError.NewConflict()
		errObj.Message = "un avis existe déjà pour cette commande"
		result.Error = errObj
		return result
	}

	review := &entity.Review{
		ID:         uuid.New().String(),
		OrderID:    request.OrderID,
		AuthorID:   caller.UserID,
		TargetID:   request.TargetID,
		TargetType: request.TargetType,
		Rating:     request.Rating,
		CreatedAt:  time.Now(),
	}
	if request.Comment != "" {
		review.Comment = &request.Comment
	}

	if err := c.ReviewStore.Create(ctx, review); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("review-usecase", fmt.Sprintf("insert failed: %v", err), "CreateReview", request.OrderID)
		return result
	}

	result.Data = review
	return result
}

func (c *ReviewUseCase) ListReviews(ctx context.Context, request *model.ListReviewsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	reviews, err := c.ReviewStore.ListForTarget(ctx, request.TargetID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("review-usecase", fmt.Sprintf("list failed: %v", err), "ListReviews", request.TargetID)
		return result
	}

	result.Data = reviews
	return result
}
