package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
port: 8080
client_origin: "http://localhost:5173"
jwt_ttl: 24h
directory_cache_ttl: 5m
max_upload_size_mb: 10
log_level: debug
`
	private := `
pg:
  host: localhost
  port: 5432
  user: u
  password: p
  dbname: techflow
jwt_key: "k"
cloudinary:
  cloud_name: cloud
  api_key: key
  api_secret: secret
  folder: techflow
`
	cfg := MustLoad(writeConfigs(t, public, private))

	if cfg.Public.Port != 8080 {
		t.Errorf("unexpected port: %d", cfg.Public.Port)
	}
	if cfg.JwtTTL() != 24*time.Hour {
		t.Errorf("unexpected jwt ttl: %s", cfg.JwtTTL())
	}
	if cfg.Public.DirectoryCacheTTL != 5*time.Minute {
		t.Errorf("unexpected cache ttl: %s", cfg.Public.DirectoryCacheTTL)
	}
	if cfg.JwtKey() != "k" {
		t.Errorf("unexpected jwt key: %s", cfg.JwtKey())
	}
	if cfg.Private.Cloudinary.CloudName != "cloud" {
		t.Errorf("unexpected cloud name: %s", cfg.Private.Cloudinary.CloudName)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
