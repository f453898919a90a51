package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("server.address = %q", cfg.Server.Address)
	}
	if cfg.Catalog.FallbackLimit != 20 {
		t.Errorf("catalog.fallback_limit = %d", cfg.Catalog.FallbackLimit)
	}
	if cfg.Catalog.ListLimit != 100 {
		t.Errorf("catalog.list_limit = %d", cfg.Catalog.ListLimit)
	}
	if cfg.Retry.Attempts != 3 || cfg.Retry.BaseDelay != 200*time.Millisecond || cfg.Retry.MaxDelay != 2*time.Second {
		t.Errorf("retry = %+v", cfg.Retry)
	}
	if cfg.JWT.Expiration != time.Hour {
		t.Errorf("jwt.expiration = %v", cfg.JWT.Expiration)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.TTL != 5*time.Minute {
		t.Errorf("redis = %+v", cfg.Redis)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
database:
  uri: mongodb://db:27017
  name: coach
catalog:
  fallback_limit: 50
jwt:
  secret: from-file
  expiration: 30m
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("S3_BUCKET_NAME", "exports")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Database.URI != "mongodb://db:27017" || cfg.Database.Name != "coach" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Catalog.FallbackLimit != 50 {
		t.Errorf("catalog.fallback_limit = %d", cfg.Catalog.FallbackLimit)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("env should override file, got %q", cfg.JWT.Secret)
	}
	if cfg.JWT.Expiration != 30*time.Minute {
		t.Errorf("jwt.expiration = %v", cfg.JWT.Expiration)
	}
	if cfg.S3.BucketName != "exports" {
		t.Errorf("s3.bucket_name = %q", cfg.S3.BucketName)
	}
}

func TestLoadConfigS3FromEnvOnly(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("S3_REGION", "eu-central-1")
	t.Setenv("S3_ACCESS_KEY_ID", "key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")
	t.Setenv("S3_BUCKET_NAME", "exports")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := S3Config{
		Endpoint:        "http://minio:9000",
		Region:          "eu-central-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "exports",
		UseSSL:          true,
		ExportPrefix:    "program-exports",
		URLExpiry:       15 * time.Minute,
	}
	if cfg.S3 != want {
		t.Errorf("s3 = %+v, want %+v", cfg.S3, want)
	}
}
