package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Payment gateway (2C2P redirect API) configuration.
	MerchantID string `mapstructure:"MERCHANT_ID"`
	SecretKey  string `mapstructure:"SECRET_KEY"`
	SiteURL    string `mapstructure:"SITE_URL"`

	// How long a booking may sit in Pending before the expiry sweep
	// marks it Timeout, in minutes.
	PendingExpiryMinutes int `mapstructure:"PENDING_EXPIRY_MINUTES"`

	// SMTP configuration for confirmation emails.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPass      string `mapstructure:"SMTP_PASS"`
	SMTPFromName  string `mapstructure:"SMTP_FROM_NAME"`
	SMTPFromEmail string `mapstructure:"SMTP_FROM_EMAIL"`
}

// PaymentConfig is the slice of Config the payment components consume.
// Obtained through Payment() so required fields are checked in one place.
type PaymentConfig struct {
	MerchantID string
	SecretKey  string
	SiteURL    string
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SITE_URL", "http://localhost:8080")
	viper.SetDefault("PENDING_EXPIRY_MINUTES", 120)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM_NAME", "Tourbook")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Payment returns the payment gateway configuration, failing if the merchant
// credentials are absent. The gateway components refuse to start without them
// rather than signing requests with an empty secret.
func (c Config) Payment() (PaymentConfig, error) {
	if c.MerchantID == "" || c.SecretKey == "" {
		return PaymentConfig{}, fmt.Errorf("payment gateway config incomplete: MERCHANT_ID and SECRET_KEY are required")
	}
	return PaymentConfig{
		MerchantID: c.MerchantID,
		SecretKey:  c.SecretKey,
		SiteURL:    c.SiteURL,
	}, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
