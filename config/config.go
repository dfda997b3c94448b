// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		Host         string
		Port         string
		User         string
		Password     string
		DBName       string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
		ConnLifetime time.Duration
	}
	GPT struct {
		APIKey      string
		Model       string
		Temperature float64
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	Google struct {
		ClientID string
	}
	Stripe struct {
		SecretKey  string
		PublicKey  string
		WebhookKey string
		PriceID    string
		SuccessURL string
		CancelURL  string
	}
	Server struct {
		Port string
	}
	ShutdownTimeout time.Duration
}

// Load reads config.{yaml,json} from the usual locations, falling back to
// environment variables when no config file is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetConfigType("json")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")
	v.AddConfigPath("$HOME/.mealia")

	v.SetDefault("ShutdownTimeout", 10*time.Second)
	v.SetDefault("GPT.Model", "gpt-4o-mini")
	v.SetDefault("GPT.Temperature", 0.7)
	v.SetDefault("JWT.TTL", 72*time.Hour)
	v.SetDefault("Server.Port", "8080")
	v.SetDefault("DB.MaxOpenConns", 20)
	v.SetDefault("DB.MaxIdleConns", 10)
	v.SetDefault("DB.ConnLifetime", 5*time.Minute)

	v.AutomaticEnv()

	// No config file is the normal case in containers: assemble the whole
	// config from environment variables instead.
	if err := v.ReadInConfig(); err != nil {
		cfg := &Config{}

		cfg.DB.Host = getEnvOr("DB_HOST", "localhost")
		cfg.DB.Port = getEnvOr("DB_PORT", "5432")
		cfg.DB.User = getEnvOr("DB_USER", "postgres")
		cfg.DB.Password = getEnvOr("DB_PASSWORD", "postgres")
		cfg.DB.DBName = getEnvOr("DB_NAME", "mealia")
		cfg.DB.SSLMode = getEnvOr("DB_SSL_MODE", "disable")
		cfg.DB.MaxOpenConns = getEnvIntOr("DB_MAX_OPEN_CONNS", 20)
		cfg.DB.MaxIdleConns = getEnvIntOr("DB_MAX_IDLE_CONNS", 10)
		cfg.DB.ConnLifetime = 5 * time.Minute
		cfg.GPT.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.GPT.Model = getEnvOr("OPENAI_MODEL", "gpt-4o-mini")
		cfg.GPT.Temperature = getEnvFloatOr("OPENAI_TEMPERATURE", 0.7)
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 72 * time.Hour
		cfg.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
		cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
		cfg.Stripe.PublicKey = os.Getenv("STRIPE_PUBLIC_KEY")
		cfg.Stripe.WebhookKey = os.Getenv("STRIPE_WEBHOOK_KEY")
		cfg.Stripe.PriceID = os.Getenv("STRIPE_PRICE_ID")
		cfg.Stripe.SuccessURL = getEnvOr("STRIPE_SUCCESS_URL", "https://mealia.app/premium/success")
		cfg.Stripe.CancelURL = getEnvOr("STRIPE_CANCEL_URL", "https://mealia.app/premium/cancel")
		cfg.Server.Port = getEnvOr("SERVER_PORT", "8080")
		cfg.ShutdownTimeout = 10 * time.Second

		return cfg, nil
	}

	// Expand ${ENV_VAR} placeholders in config file values.
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimPrefix(strings.TrimSuffix(value, "}"), "${")
			if envValue := os.Getenv(envVar); envValue != "" {
				v.Set(key, envValue)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOr(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloatOr(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
