package config

import (
	"time"

	"greendrop-service/src/internal/delivery/http"
	"greendrop-service/src/internal/delivery/http/middleware"
	"greendrop-service/src/internal/delivery/http/route"
	"greendrop-service/src/internal/gateway/messaging"
	"greendrop-service/src/internal/gateway/notification"
	"greendrop-service/src/internal/pricing"
	"greendrop-service/src/internal/repository"
	"greendrop-service/src/internal/usecase"
	"greendrop-service/src/pkg/databases/mysql"
	kafkaPkg "greendrop-service/src/pkg/kafka"
	"greendrop-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkg.Producer
	Redis       redis.UniversalClient
	Geoservice  *GeoService
	AsynqClient *asynq.Client
	AsynqMux    *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// repositories
	orderRepository := repository.NewOrderRepository(config.DB)
	shopRepository := repository.NewShopRepository(config.DB)
	userRepository := repository.NewUserRepository(config.DB)
	reviewRepository := repository.NewReviewRepository(config.DB)
	disputeRepository := repository.NewDisputeRepository(config.DB)
	notificationRepository := repository.NewNotificationRepository(config.DB)
	zoneRepository := repository.NewZoneRepository(config.DB)

	// gateways
	orderProducer := messaging.NewOrderProducer(config.Producer, config.Log)
	dispatcher := notification.NewDispatcher(config.AsynqClient, config.Log)
	gateway := NewPaymentGateway(config.Config, config.Log)
	pricingPolicy := pricing.FromConfig(config.Config)

	var mapsClient *maps.Client
	if config.Geoservice != nil {
		mapsClient = config.Geoservice.Client
	}

	// use cases
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		shopRepository,
		userRepository,
		pricingPolicy,
		config.Config,
		mapsClient,
		dispatcher,
		orderProducer,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		shopRepository,
		userRepository,
		gateway,
		pricingPolicy,
		config.Config,
		dispatcher,
	)
	connectUseCase := usecase.NewConnectUseCase(
		config.Log,
		config.Validate,
		shopRepository,
		userRepository,
		gateway,
		config.Config,
	)
	reviewUseCase := usecase.NewReviewUseCase(config.Log, config.Validate, reviewRepository, orderRepository)
	disputeUseCase := usecase.NewDisputeUseCase(config.Log, config.Validate, disputeRepository, orderRepository)
	shopUseCase := usecase.NewShopUseCase(config.Log, config.Validate, shopRepository)
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, userRepository, notificationRepository)
	zoneUseCase := usecase.NewZoneUseCase(config.Log, config.Validate, zoneRepository)

	// controllers
	orderController := http.NewOrderController(orderUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	connectController := http.NewConnectController(connectUseCase, config.Log)
	reviewController := http.NewReviewController(reviewUseCase, disputeUseCase, config.Log)
	shopController := http.NewShopController(shopUseCase, config.Log)
	userController := http.NewUserController(userUseCase, config.Log)
	adminController := http.NewAdminController(userUseCase, zoneUseCase, config.Log)

	// background worker
	if config.AsynqMux != nil {
		worker := notification.NewWorker(notificationRepository, orderProducer, config.Log)
		config.AsynqMux.HandleFunc(notification.TypeOrderStatusNotice, worker.HandleOrderStatusNotice)
	}

	rateLimiter := newRateLimiter(config.Config, config.Redis)

	routeConfig := route.RouteConfig{
		App:               config.App,
		OrderController:   orderController,
		PaymentController: paymentController,
		ConnectController: connectController,
		ReviewController:  reviewController,
		ShopController:    shopController,
		UserController:    userController,
		AdminController:   adminController,
		AuthMiddleware:    middleware.VerifyBearer(config.Config, userRepository, config.Log),
		RateLimiter:       rateLimiter,
	}
	routeConfig.Setup()
}

func newRateLimiter(v *viper.Viper, redisClient redis.UniversalClient) *middleware.RateLimiter {
	if !v.GetBool("ratelimit.enabled") {
		return nil
	}

	limit := v.GetInt64("ratelimit.limit")
	if limit == 0 {
		limit = 100
	}
	window := v.GetDuration("ratelimit.window")
	if window == 0 {
		window = time.Minute
	}

	var store middleware.CounterStore
	if client, ok := redisClient.(*redis.Client); ok && client != nil {
		store = &middleware.RedisCounter{Client: client}
	} else {
		store = middleware.NewMemoryCounter()
	}

	return middleware.NewRateLimiter(store, limit, window)
}
