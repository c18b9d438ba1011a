package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetEnv clears a variable for the test while keeping t.Setenv's restore.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/absent.env")
	for _, key := range []string{"DB_URL", "PORT", "ENV", "UPLOAD_DIR", "STORAGE_BACKEND", "S3_REGION"} {
		unsetEnv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, "auto", cfg.S3.Region)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/absent.env")
	t.Setenv("DB_URL", "postgres://localhost/studyhub")
	t.Setenv("PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/var/studyhub/uploads")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET_NAME", "materials")

	cfg := Load()

	assert.Equal(t, "postgres://localhost/studyhub", cfg.DBURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/studyhub/uploads", cfg.UploadDir)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, "materials", cfg.S3.BucketName)
}
