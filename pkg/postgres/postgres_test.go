package postgres

import "testing"

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "shop", Pass: "p@ss", DB: "orders"}

	got := cfg.DSN()
	want := "postgres://shop:p%40ss@db:5433/orders?sslmode=disable"
	if got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
