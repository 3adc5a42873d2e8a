package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("expected no error writing config, got %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Logger.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Logger.Level)
	}
	if cfg.Logger.Format != "text" {
		t.Errorf("expected default format text, got %q", cfg.Logger.Format)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("expected default backend memory, got %q", cfg.Cache.Backend)
	}
	if cfg.Loan.MaxPrincipal != 1_000_000_000.0 {
		t.Errorf("expected default max principal, got %f", cfg.Loan.MaxPrincipal)
	}
	if cfg.Loan.MaxRatePercent != 100.0 {
		t.Errorf("expected default max rate, got %f", cfg.Loan.MaxRatePercent)
	}
	if cfg.Search.MaxRatePercent != 50.0 {
		t.Errorf("expected default search bracket, got %f", cfg.Search.MaxRatePercent)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {

	path := writeConfigFile(t, `
[logger]
level = "debug"

[search]
max_rate_percent = 25.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Logger.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logger.Level)
	}
	if cfg.Search.MaxRatePercent != 25.0 {
		t.Errorf("expected search bracket 25, got %f", cfg.Search.MaxRatePercent)
	}
	// Lo no mencionado en el archivo conserva su valor por defecto
	if cfg.Logger.Format != "text" {
		t.Errorf("expected default format text, got %q", cfg.Logger.Format)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("expected default backend memory, got %q", cfg.Cache.Backend)
	}
}

func TestLoad_InvalidValues(t *testing.T) {

	cases := []struct {
		name    string
		content string
	}{
		{
			"unknown logger level",
			"[logger]\nlevel = \"verbose\"\n",
		},
		{
			"unknown logger format",
			"[logger]\nformat = \"xml\"\n",
		},
		{
			"unknown cache backend",
			"[cache]\nbackend = \"memcached\"\n",
		},
		{
			"redis backend without address",
			"[cache]\nbackend = \"redis\"\nredis_addr = \"\"\n",
		},
		{
			"non positive max principal",
			"[loan]\nmax_principal = 0.0\n",
		},
		{
			"search bracket above loan limit",
			"[search]\nmax_rate_percent = 150.0\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)

			if _, err := Load(path); err == nil {
				t.Error("expected a validation error, got none")
			}
		})
	}
}

func TestLoad_RedisBackendWithAddress(t *testing.T) {

	path := writeConfigFile(t, "[cache]\nbackend = \"redis\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("expected the default redis address, got %q", cfg.Cache.RedisAddr)
	}
}
