package config

import "os"

// Config collects the process environment. Every value has a development
// default so the service starts with nothing configured.
type Config struct {
	Port        string
	StoreDriver string // "mysql" or "memory"

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr    string
	KafkaEnabled bool

	AdminSecret string
	JWTSecret   string
	PaymentURL  string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		StoreDriver:  getenv("STORE_DRIVER", "mysql"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBUser:       getenv("DB_USER", "root"),
		DBPass:       getenv("DB_PASS", ""),
		DBName:       getenv("DB_NAME", "storefront"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaEnabled: os.Getenv("KAFKA_BROKERS") != "",
		AdminSecret:  getenv("ADMIN_SECRET", "TMH2025!Admin"),
		JWTSecret:    getenv("JWT_SECRET", "secret"),
		PaymentURL:   os.Getenv("PAYMENT_PROCESSOR_URL"),
	}
}
