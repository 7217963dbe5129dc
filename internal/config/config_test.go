package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("STORAGE_ENDPOINT", "s3.example.com")
	t.Setenv("STORAGE_ACCESS_KEY", "key")
	t.Setenv("STORAGE_SECRET_KEY", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.StorageRegion)
	assert.Equal(t, "uploads", cfg.StorageBucket)
	assert.True(t, cfg.StorageUseSSL)
	assert.Equal(t, "public-read", cfg.UploadACL)
	assert.Equal(t, 3600, cfg.PresignExpiry)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORAGE_REGION", "eu-west-1")
	t.Setenv("STORAGE_BUCKET", "media")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("PRESIGN_EXPIRY", "900")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "eu-west-1", cfg.StorageRegion)
	assert.Equal(t, "media", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
	assert.Equal(t, 900, cfg.PresignExpiry)
	assert.True(t, cfg.IsProduction())
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{"missing endpoint", "STORAGE_ENDPOINT"},
		{"missing access key", "STORAGE_ACCESS_KEY"},
		{"missing secret key", "STORAGE_SECRET_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.omit, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.omit)
		})
	}
}

func TestLoadInvalidPresignExpiryFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("PRESIGN_EXPIRY", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3600, cfg.PresignExpiry)
}
