package config_test

import (
	"testing"
	"time"

	"github.com/Samu0104/loucura-total/cmd/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	if cfg.Server.Port != "8080" {
		t.Fatalf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "store.db" {
		t.Fatalf("default db path = %q, want store.db", cfg.Database.Path)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Fatalf("default max open conns = %d, want 10", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_PATH", "/var/data/store.db")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := config.Load()

	if cfg.Server.Port != "9000" {
		t.Fatalf("port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Path != "/var/data/store.db" {
		t.Fatalf("db path = %q, want /var/data/store.db", cfg.Database.Path)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("conn max lifetime = %v, want 30m", cfg.Database.ConnMaxLifetime)
	}
	// unparseable values fall back to the default
	if cfg.Database.MaxOpenConns != 10 {
		t.Fatalf("max open conns = %d, want fallback 10", cfg.Database.MaxOpenConns)
	}
}
