package config

import (
	"greendrop-service/src/internal/gateway/payment"
	"greendrop-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewPaymentGateway(v *viper.Viper, logger log.Log) payment.Gateway {
	return payment.NewStripeGateway(v, logger)
}
