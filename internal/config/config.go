package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       PostgresConfig
	Kafka    KafkaConfig
	Paystack PaystackConfig
	SMTP     SMTPConfig
	Bank     BankConfig
	Redirect RedirectConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type KafkaConfig struct {
	Brokers           []string
	NotificationTopic string
	ConsumerGroup     string
}

type PaystackConfig struct {
	BaseURL         string
	SecretKey       string
	CallbackBaseURL string
	TimeoutSeconds  int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// BankConfig is the static account shown for bank-transfer checkouts.
type BankConfig struct {
	Name          string
	AccountNumber string
	AccountName   string
}

// RedirectConfig holds the frontend destinations the payer is sent to after
// payment reconciliation.
type RedirectConfig struct {
	SuccessURL string
	FailureURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "twinkle-shop"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8030),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "shop"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Kafka: KafkaConfig{
			Brokers:           splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			NotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "order_notifications"),
			ConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "notification-worker"),
		},
		Paystack: PaystackConfig{
			BaseURL:         getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			SecretKey:       getEnv("PAYSTACK_SECRET_KEY", ""),
			CallbackBaseURL: getEnv("PAYSTACK_CALLBACK_BASE_URL", "http://localhost:8030"),
			TimeoutSeconds:  getEnvAsInt("PAYSTACK_TIMEOUT_SECONDS", 30),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.us.appsuite.cloud"),
			Port:     getEnvAsInt("SMTP_PORT", 465),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", "Twinkleweetphyn"),
		},
		Bank: BankConfig{
			Name:          getEnv("BANK_NAME", "Example Bank"),
			AccountNumber: getEnv("BANK_ACCOUNT_NUMBER", "1234567890"),
			AccountName:   getEnv("BANK_ACCOUNT_NAME", "My Store Ltd."),
		},
		Redirect: RedirectConfig{
			SuccessURL: getEnv("ORDER_SUCCESS_URL", "http://127.0.0.1:5500/order-success.html"),
			FailureURL: getEnv("ORDER_FAILURE_URL", "http://127.0.0.1:5500/order-failed.html"),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.Paystack.BaseURL == "" {
		return fmt.Errorf("PAYSTACK_BASE_URL is empty")
	}
	// SecretKey and SMTP credentials stay optional so local runs without
	// external accounts still boot.
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
