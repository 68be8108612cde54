package config_test

import (
	"testing"

	"github.com/akilimali/parapheur/internal/config"
)

func TestStorageConfig_Defaults(t *testing.T) {
	cfg := &config.StorageConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != ".data/blobs" {
		t.Errorf("BasePath = %q, want default", cfg.BasePath)
	}
	if cfg.MaxUploadSize != "50MB" {
		t.Errorf("MaxUploadSize = %q, want 50MB", cfg.MaxUploadSize)
	}
	if cfg.MaxUploadSizeBytes() != 50_000_000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 50000000", cfg.MaxUploadSizeBytes())
	}
}

func TestStorageConfig_ParsesHumanSizes(t *testing.T) {
	tests := []struct {
		size      string
		wantBytes int64
	}{
		{"10MB", 10_000_000},
		{"1GB", 1_000_000_000},
		{"512KB", 512_000},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			cfg := &config.StorageConfig{MaxUploadSize: tt.size}
			if err := cfg.Finalize(); err != nil {
				t.Fatalf("Finalize() failed: %v", err)
			}
			if cfg.MaxUploadSizeBytes() != tt.wantBytes {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), tt.wantBytes)
			}
		})
	}
}

func TestStorageConfig_InvalidSize(t *testing.T) {
	cfg := &config.StorageConfig{MaxUploadSize: "plenty"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() accepted invalid max_upload_size")
	}
}

func TestStorageConfig_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvStorageBasePath, "/var/lib/parapheur/blobs")
	t.Setenv(config.EnvStorageMaxUploadSize, "25MB")

	cfg := &config.StorageConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.BasePath != "/var/lib/parapheur/blobs" {
		t.Errorf("BasePath = %q, want env override", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 25_000_000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 25000000", cfg.MaxUploadSizeBytes())
	}
}
