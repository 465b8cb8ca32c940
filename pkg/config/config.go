package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Backends for CATALOG_STORE and ORDER_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort int
	HTTPPort int

	// StorefrontAddr is the gRPC target the gateway dials.
	StorefrontAddr string

	CatalogStore string
	OrderStore   string
	Postgres     Postgres

	FreeDeliveryThreshold decimal.Decimal
	DeliveryFee           decimal.Decimal
	DefaultLanguage       string
	CheckoutConcurrency   int
}

type Postgres struct {
	Host    string
	Port    int
	User    string
	Pass    string
	DB      string
	SSLMode string
}

// NeedsPostgres reports whether any backend is configured for Postgres.
func (c Config) NeedsPostgres() bool {
	return c.CatalogStore == StorePostgres || c.OrderStore == StorePostgres
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables always win over it.
func Load() Config {
	_ = loadDotEnv(".env")

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		GRPCPort:       getEnvInt("GRPC_PORT", 8081),
		StorefrontAddr: getEnv("STOREFRONT_ADDR", "localhost:8081"),
		CatalogStore:   strings.ToLower(getEnv("CATALOG_STORE", StoreMemory)),
		OrderStore:     strings.ToLower(getEnv("ORDER_STORE", StoreMemory)),
		Postgres: Postgres{
			Host:    getEnv("POSTGRES_HOST", "localhost"),
			Port:    getEnvInt("POSTGRES_PORT", 5432),
			User:    getEnv("POSTGRES_USER", "shopping"),
			Pass:    getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			DB:      getEnv("POSTGRES_DB", "shopping_db"),
			SSLMode: getEnv("POSTGRES_SSLMODE", "disable"),
		},
		FreeDeliveryThreshold: getEnvDecimal("FREE_DELIVERY_THRESHOLD", decimal.NewFromInt(50)),
		DeliveryFee:           getEnvDecimal("DELIVERY_FEE", decimal.RequireFromString("4.99")),
		DefaultLanguage:       getEnv("DEFAULT_LANGUAGE", "en"),
		CheckoutConcurrency:   getEnvInt("CHECKOUT_CONCURRENCY", 10),
	}
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}
