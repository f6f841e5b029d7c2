package usecase

import (
	"context"
	"fmt"
	"time"

	"greendrop-service/src/internal/entity"
	"greendrop-service/src/internal/model"
	"greendrop-service/src/internal/policy"
	"greendrop-service/src/internal/pricing"
	"greendrop-service/src/internal/repository"
	httpError "greendrop-service/src/pkg/http-error"
	"greendrop-service/src/pkg/log"
	"greendrop-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

type OrderUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderStore      OrderStore
	ShopStore       ShopStore
	UserStore       UserStore
	Pricing         *pricing.Policy
	Config          *viper.Viper
	Maps            *maps.Client
	Notifier        StatusNotifier
	Producer        EventProducer
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderStore OrderStore,
	shopStore ShopStore,
	userStore UserStore,
	pricingPolicy *pricing.Policy,
	cfg *viper.Viper,
	mapsClient *maps.Client,
	notifier StatusNotifier,
	producer EventProducer,
) *OrderUseCase {
	return &OrderUseCase{
		Log:        logger,
		Validate:   validate,
		OrderStore: orderStore,
		ShopStore:  shopStore,
		UserStore:  userStore,
		Pricing:    pricingPolicy,
		Config:     cfg,
		Maps:       mapsClient,
		Notifier:   notifier,
		Producer:   producer,
	}
}

func (c *OrderUseCase) CreateOrder(ctx context.Context, request *model.CreateOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", err.Error(), "CreateOrder-validation", utils.ConvertString(request))
		return result
	}

	shop, err := c.ShopStore.FindByID(ctx, request.ShopID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "boutique introuvable"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("shop lookup failed: %v", err), "CreateOrder", request.ShopID)
		return result
	}

	orderID := uuid.NewString()
	now := time.Now().UTC()
	subtotal := 0.0
	items := make([]entity.OrderItem, 0, len(request.Items))
	for _, itemReq := range request.Items {
		product, err := c.ShopStore.FindProduct(ctx, itemReq.ProductID)
		if err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("produit introuvable: %s", itemReq.ProductID)
			result.Error = errObj
			c.Log.Error("order-usecase", fmt.Sprintf("product lookup failed: %v", err), "CreateOrder", itemReq.ProductID)
			return result
		}
		// price captured at order time, not re-validated later
		subtotal += product.Price * float64(itemReq.Quantity)
		items = append(items, entity.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  itemReq.Quantity,
			Price:     product.Price,
		})
	}

	deliveryFee := c.Pricing.DeliveryFee(shop.DeliveryFee)
	eta := now.Add(c.estimateDeliveryTime(ctx, shop, request.DeliveryLocation))

	paymentMethod := request.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCard
	}

	var notes *string
	if request.Notes != "" {
		notes = &request.Notes
	}

	order := &entity.Order{
		ID:                    orderID,
		Reference:             fmt.Sprintf("GD-%d", now.UnixMilli()),
		UserID:                request.UserID,
		ShopID:                shop.ID,
		Subtotal:              subtotal,
		DeliveryFee:           deliveryFee,
		Total:                 subtotal + deliveryFee,
		Status:                entity.StatusPending,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         entity.PaymentStatusPending,
		DeliveryAddress:       request.DeliveryAddress,
		DeliveryLat:           request.DeliveryLocation.Latitude,
		DeliveryLng:           request.DeliveryLocation.Longitude,
		Notes:                 notes,
		EstimatedDeliveryTime: &eta,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := c.OrderStore.Create(ctx, order, items); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "impossible d'enregistrer la commande"
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("order insert failed: %v", err), "CreateOrder", orderID)
		return result
	}

	if c.Producer != nil {
		event := &model.OrderCreatedEvent{
			ID:      orderID,
			OrderID: orderID,
			UserID:  order.UserID,
			ShopID:  order.ShopID,
			Total:   order.Total,
		}
		if err := c.Producer.SendOrderCreated(event); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("failed to publish order created event: %v", err), "CreateOrder", orderID)
		}
	}

	c.Log.Info("order-usecase", "order created", "CreateOrder", orderID)
	result.Data = order
	return result
}

func (c *OrderUseCase) ListMyOrders(ctx context.Context, request *model.ListOrdersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	status := entity.NormalizeStatus(request.Status)
	if request.Status != "" && !entity.IsValidStatus(status) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("statut inconnu: %s", request.Status)
		result.Error = errObj
		return result
	}
	if request.Status == "" {
		status = ""
	}

	orders, err := c.OrderStore.FindByUser(ctx, request.UserID, status)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("list orders failed: %v", err), "ListMyOrders", request.UserID)
		return result
	}

	result.Data = orders
	return result
}

func (c *OrderUseCase) AdminListOrders(ctx context.Context, request *model.AdminListOrdersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	orders, err := c.OrderStore.FindAll(ctx, repositoryFilter(request))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("admin list failed: %v", err), "AdminListOrders", "")
		return result
	}

	result.Data = orders
	return result
}

func (c *OrderUseCase) GetOrder(ctx context.Context, caller policy.Caller, request *model.GetOrderRequest) utils.Result {
	var result utils.Result

	order, shop, errResult := c.loadOrderWithShop(ctx, request.OrderID)
	if errResult != nil {
		return *errResult
	}

	if !policy.CanViewOrder(caller, orderResource(order, shop)) {
		errObj := httpError.NewForbidden()
		result.Error = errObj
		c.Log.Error("order-usecase", "caller cannot view order", "GetOrder", caller.UserID)
		return result
	}

	items, err := c.OrderStore.FindItems(ctx, order.ID)
	if err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("items lookup failed: %v", err), "GetOrder", order.ID)
	}

	result.Data = map[string]interface{}{
		"order": order,
		"items": items,
	}
	return result
}

func (c *OrderUseCase) UpdateStatus(ctx context.Context, caller policy.Caller, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", err.Error(), "UpdateStatus-validation", utils.ConvertString(request))
		return result
	}

	order, shop, errResult := c.loadOrderWithShop(ctx, request.OrderID)
	if errResult != nil {
		return *errResult
	}

	if !policy.CanUpdateOrderStatus(caller, orderResource(order, shop)) {
		errObj := httpError.NewForbidden()
		result.Error = errObj
		c.Log.Error("order-usecase", "caller cannot update order status", "UpdateStatus", caller.UserID)
		return result
	}

	if request.DriverID != "" {
		if !policy.CanAssignDriver(caller) {
			errObj := httpError.NewForbidden()
			errObj.Message = "seul un administrateur peut assigner un livreur"
			result.Error = errObj
			return result
		}
		if _, err := c.UserStore.FindDriver(ctx, request.DriverID); err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = "livreur introuvable"
			result.Error = errObj
			c.Log.Error("order-usecase", fmt.Sprintf("driver lookup failed: %v", err), "UpdateStatus", request.DriverID)
			return result
		}
	}

	toStatus := entity.NormalizeStatus(request.Status)
	if !entity.IsValidStatus(toStatus) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("statut inconnu: %s", request.Status)
		result.Error = errObj
		return result
	}
	if !entity.CanTransition(order.Status, toStatus) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("transition de statut non autorisée: %s vers %s", order.Status, toStatus)
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "UpdateStatus", order.ID)
		return result
	}

	var deliveredAt *time.Time
	if toStatus == entity.StatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	ok, err := c.OrderStore.UpdateStatusFrom(ctx, order.ID, order.Status, toStatus, deliveredAt)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("order-usecase", fmt.Sprintf("status update failed: %v", err), "UpdateStatus", order.ID)
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "la commande a été modifiée entre-temps, veuillez réessayer"
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "UpdateStatus", "concurrent-update")
		return result
	}

	// the assignment waits for the winning status update so a lost
	// race leaves the order untouched
	if request.DriverID != "" {
		if err := c.OrderStore.AssignDriver(ctx, order.ID, request.DriverID); err != nil {
			errObj := httpError.NewInternalServerError()
			result.Error = errObj
			c.Log.Error("order-usecase", fmt.Sprintf("driver assignment failed: %v", err), "UpdateStatus", order.ID)
			return result
		}
		driverID := request.DriverID
		order.DriverID = &driverID
	}

	previous := order.Status
	order.Status = toStatus
	order.DeliveredAt = deliveredAt

	if err := c.OrderStore.AppendActivity(ctx, order.ID, caller.UserID, "status_"+toStatus, request.Notes); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("activity append failed: %v", err), "UpdateStatus", order.ID)
	}

	if c.Notifier != nil {
		c.Notifier.Dispatch(statusNotice(order))
	}
	if c.Producer != nil {
		event := &model.OrderStatusEvent{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			UserID:   order.UserID,
			ActorID:  caller.UserID,
			Status:   toStatus,
			Previous: previous,
		}
		if err := c.Producer.SendOrderStatus(event); err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("failed to publish status event: %v", err), "UpdateStatus", order.ID)
		}
	}

	c.Log.Info("order-usecase", fmt.Sprintf("order moved from %s to %s", previous, toStatus), "UpdateStatus", order.ID)
	result.Data = order
	return result
}

func (c *OrderUseCase) loadOrderWithShop(ctx context.Context, orderID string) (*entity.Order, *entity.Shop, *utils.Result) {
	order, err := c.OrderStore.FindByID(ctx, orderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "commande introuvable"
		c.Log.Error("order-usecase", fmt.Sprintf("order lookup failed: %v", err), "loadOrderWithShop", orderID)
		return nil, nil, &utils.Result{Error: errObj}
	}

	shop, err := c.ShopStore.FindByID(ctx, order.ShopID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		c.Log.Error("order-usecase", fmt.Sprintf("shop lookup failed: %v", err), "loadOrderWithShop", order.ShopID)
		return nil, nil, &utils.Result{Error: errObj}
	}

	return order, shop, nil
}

// estimateDeliveryTime asks the directions service when configured and
// falls back to the policy's fixed ETA.
func (c *OrderUseCase) estimateDeliveryTime(ctx context.Context, shop *entity.Shop, destination model.LocationRequest) time.Duration {
	if c.Maps == nil {
		return c.Pricing.DefaultETA
	}

	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", shop.Lat, shop.Lng),
		Destination: fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := c.Maps.Directions(ctx, req)
	if err != nil || len(routes) == 0 {
		c.Log.Error("order-usecase", fmt.Sprintf("directions request failed: %v", err), "estimateDeliveryTime", "")
		return c.Pricing.DefaultETA
	}

	total := time.Duration(0)
	for _, leg := range routes[0].Legs {
		total += leg.Duration
	}
	if total <= 0 {
		return c.Pricing.DefaultETA
	}
	// preparation buffer on top of the drive
	return total + 15*time.Minute
}

func repositoryFilter(request *model.AdminListOrdersRequest) repository.OrderFilter {
	return repository.OrderFilter{
		Status:   entity.NormalizeStatus(request.Status),
		ShopID:   request.ShopID,
		DriverID: request.DriverID,
		Limit:    request.Limit,
	}
}

func orderResource(order *entity.Order, shop *entity.Shop) policy.OrderResource {
	return policy.OrderResource{
		OwnerID:     order.UserID,
		DriverID:    order.DriverID,
		ShopOwnerID: shop.OwnerID,
	}
}

var statusNoticeText = map[string]string{
	entity.StatusPaid:      "Votre paiement a été confirmé.",
	entity.StatusConfirmed: "La boutique a confirmé votre commande.",
	entity.StatusPreparing: "Votre commande est en préparation.",
	entity.StatusReady:     "Votre commande est prête.",
	entity.StatusPickedUp:  "Le livreur a récupéré votre commande.",
	entity.StatusInTransit: "Votre commande est en route.",
	entity.StatusDelivered: "Votre commande a été livrée.",
	entity.StatusCancelled: "Votre commande a été annulée.",
}

func statusNotice(order *entity.Order) *model.OrderStatusNotice {
	body, ok := statusNoticeText[order.Status]
	if !ok {
		body = fmt.Sprintf("Votre commande est passée au statut %s.", order.Status)
	}
	return &model.OrderStatusNotice{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Title:   fmt.Sprintf("Commande %s", order.Reference),
		Body:    body,
		At:      time.Now().UTC(),
	}
}
