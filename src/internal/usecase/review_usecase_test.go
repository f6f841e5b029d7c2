package usecase

import (
	"context"
	"testing"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/policy"
	httpError "greendrop-service/src/pkg/http-error"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReviewUseCase(reviewStore *MockReviewStore, orderStore *MockOrderStore) *ReviewUseCase {
	return NewReviewUseCase(testLogger(), validator.New(), reviewStore, orderStore)
}

func reviewRequest() *model.CreateReviewRequest {
	return &model.CreateReviewRequest{
		AuthorID:   "user-1",
		OrderID:    "order-1",
		TargetID:   "shop-1",
		TargetType: entity.TargetShop,
		Rating:     4,
		Comment:    "Livraison rapide",
	}
}

func TestCreateReviewRequiresDelivery(t *testing.T) {
	reviewStore := new(MockReviewStore)
	orderStore := new(MockOrderStore)
	useCase := newReviewUseCase(reviewStore, orderStore)

	orderStore.On("FindByID", mock.Anything, "order-1").Return(&entity.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: entity.StatusInTransit,
	}, nil)

	result := useCase.CreateReview(context.Background(), policy.Caller{UserID: "user-1", Role: entity.RoleUser}, reviewRequest())

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, commonErr.Code)
	reviewStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReviewAcceptsLegacyCompletedStatus(t *testing.T) {
	reviewStore := new(MockReviewStore)
	orderStore := new(MockOrderStore)
	useCase := newReviewUseCase(reviewStore, orderStore)

	orderStore.On("FindByID", mock.Anything, "order-1").Return(&entity.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: "completed",
	}, nil)
	reviewStore.On("Exists", mock.Anything, "order-1", "user-1", "shop-1").Return(false, nil)
	reviewStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	result := useCase.CreateReview(context.Background(), policy.Caller{UserID: "user-1", Role: entity.RoleUser}, reviewRequest())

	assert.Nil(t, result.Error)
	review := result.Data.(*entity.Review)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "user-1", review.AuthorID)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	reviewStore := new(MockReviewStore)
	orderStore := new(MockOrderStore)
	useCase := newReviewUseCase(reviewStore, orderStore)

	orderStore.On("FindByID", mock.Anything, "order-1").Return(&entity.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: entity.StatusDelivered,
	}, nil)
	reviewStore.On("Exists", mock.Anything, "order-1", "user-1", "shop-1").Return(true, nil)

	result := useCase.CreateReview(context.Background(), policy.Caller{UserID: "user-1", Role: entity.RoleUser}, reviewRequest())

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 409, commonErr.Code)
}

func TestCreateReviewOnlyByOrderOwner(t *testing.T) {
	reviewStore := new(MockReviewStore)
	orderStore := new(MockOrderStore)
	useCase := newReviewUseCase(reviewStore, orderStore)

	orderStore.On("FindByID", mock.Anything, "order-1").Return(&entity.Order{
		ID:     "order-1",
		UserID: "someone-else",
		Status: entity.StatusDelivered,
	}, nil)

	request := reviewRequest()
	result := useCase.CreateReview(context.Background(), policy.Caller{UserID: "user-1", Role: entity.RoleUser}, request)

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 403, commonErr.Code)
}
