package config

import "testing"

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "parcel")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "parcel_db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("PAYMENT_TX", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if !cfg.PaymentTx {
		t.Fatal("expected PAYMENT_TX=true to enable transactional payments")
	}

	want := "host=db.internal user=parcel password=secret dbname=parcel_db port=5433 sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("unexpected DSN %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("PAYMENT_TX", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DBPort != "5432" {
		t.Fatalf("expected default db port 5432, got %q", cfg.DBPort)
	}
	if cfg.PaymentTx {
		t.Fatal("expected transactional payments off by default")
	}
}
