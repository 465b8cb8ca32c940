package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.GRPCPort != 8081 || cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected ports: grpc=%d http=%d", cfg.GRPCPort, cfg.HTTPPort)
	}
	if cfg.OrderStore != StoreMemory || cfg.CatalogStore != StoreMemory {
		t.Fatalf("expected memory stores, got catalog=%q order=%q", cfg.CatalogStore, cfg.OrderStore)
	}
	if cfg.NeedsPostgres() {
		t.Fatal("memory stores must not need postgres")
	}
	if !cfg.FreeDeliveryThreshold.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("threshold = %s", cfg.FreeDeliveryThreshold)
	}
	if !cfg.DeliveryFee.Equal(decimal.RequireFromString("4.99")) {
		t.Fatalf("fee = %s", cfg.DeliveryFee)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("ORDER_STORE", "Postgres")
	t.Setenv("DELIVERY_FEE", "2.50")
	t.Setenv("FREE_DELIVERY_THRESHOLD", "not-a-number")

	cfg := Load()

	if cfg.GRPCPort != 9090 {
		t.Fatalf("grpc port = %d", cfg.GRPCPort)
	}
	if cfg.OrderStore != StorePostgres {
		t.Fatalf("order store = %q", cfg.OrderStore)
	}
	if !cfg.NeedsPostgres() {
		t.Fatal("postgres order store must need postgres")
	}
	if !cfg.DeliveryFee.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("fee = %s", cfg.DeliveryFee)
	}
	t.Run("invalid decimal falls back to default", func(t *testing.T) {
		if !cfg.FreeDeliveryThreshold.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("threshold = %s", cfg.FreeDeliveryThreshold)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DEFAULT_LANGUAGE=hi\nHTTP_PORT=7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTP_PORT", "6060")
	t.Cleanup(func() { os.Unsetenv("DEFAULT_LANGUAGE") })

	cfg := Load()

	if cfg.DefaultLanguage != "hi" {
		t.Fatalf("language = %q", cfg.DefaultLanguage)
	}
	if cfg.HTTPPort != 6060 {
		t.Fatalf("environment must win over .env, got %d", cfg.HTTPPort)
	}
}
