package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Catalog CatalogConfig
	Pricing PricingConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  int // in minutes
	RefreshExpiry int // in days
}

// CatalogConfig tunes the mock catalog source.
type CatalogConfig struct {
	FetchDelayMs int // simulated upstream latency per fetch
}

// PricingConfig holds the order pricing rules shared by cart display
// and checkout.
type PricingConfig struct {
	FreeShippingThreshold float64
	ShippingFee           float64
	TaxRate               float64
}

// PaymentConfig tunes the simulated payment gateway.
type PaymentConfig struct {
	ProcessingDelayMs int
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_ACCESS_EXPIRY", 15)
	viper.SetDefault("JWT_REFRESH_EXPIRY", 7)
	viper.SetDefault("CATALOG_FETCH_DELAY_MS", 500)
	viper.SetDefault("PRICING_FREE_SHIPPING_THRESHOLD", 50.0)
	viper.SetDefault("PRICING_SHIPPING_FEE", 4.99)
	viper.SetDefault("PRICING_TAX_RATE", 0.08)
	viper.SetDefault("PAYMENT_PROCESSING_DELAY_MS", 1500)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  viper.GetInt("JWT_ACCESS_EXPIRY"),
			RefreshExpiry: viper.GetInt("JWT_REFRESH_EXPIRY"),
		},
		Catalog: CatalogConfig{
			FetchDelayMs: viper.GetInt("CATALOG_FETCH_DELAY_MS"),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: viper.GetFloat64("PRICING_FREE_SHIPPING_THRESHOLD"),
			ShippingFee:           viper.GetFloat64("PRICING_SHIPPING_FEE"),
			TaxRate:               viper.GetFloat64("PRICING_TAX_RATE"),
		},
		Payment: PaymentConfig{
			ProcessingDelayMs: viper.GetInt("PAYMENT_PROCESSING_DELAY_MS"),
		},
	}
}
