package pricing

import (
	"math"
	"time"

	"github.com/spf13/viper"
)

// Policy is the single source of pricing and delivery constants. Every
// order entry point consumes it; no endpoint carries its own literals.
type Policy struct {
	Currency             string
	DefaultDeliveryFee   float64
	MerchantSharePercent int64
	DefaultETA           time.Duration
}

func FromConfig(v *viper.Viper) *Policy {
	v.SetDefault("pricing.currency", "eur")
	v.SetDefault("pricing.delivery_fee", 5.0)
	v.SetDefault("pricing.merchant_share_percent", 85)
	v.SetDefault("pricing.eta_minutes", 30)

	return &Policy{
		Currency:             v.GetString("pricing.currency"),
		DefaultDeliveryFee:   v.GetFloat64("pricing.delivery_fee"),
		MerchantSharePercent: v.GetInt64("pricing.merchant_share_percent"),
		DefaultETA:           time.Duration(v.GetInt("pricing.eta_minutes")) * time.Minute,
	}
}

// DeliveryFee picks the shop's configured fee when present, the policy
// default otherwise.
func (p *Policy) DeliveryFee(shopFee *float64) float64 {
	if shopFee != nil && *shopFee >= 0 {
		return *shopFee
	}
	return p.DefaultDeliveryFee
}

// MerchantSplit returns the minor-unit amount routed to the shop's
// connected account, rounded to the nearest unit. The platform retains
// the remainder.
func (p *Policy) MerchantSplit(amountMinor int64) int64 {
	return int64(math.Round(float64(amountMinor) * float64(p.MerchantSharePercent) / 100.0))
}

// MinorUnits converts a major-unit amount to minor units (cents).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
