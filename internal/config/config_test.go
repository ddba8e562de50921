package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: test-secret
minio:
  endpoint: minio:9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "foodgram-go", cfg.App.Name)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, 6, cfg.Pagination.PageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, "recipe-images", cfg.MinIO.ImageBucket)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireDuration())
	assert.Equal(t, "recipe_events", cfg.Kafka.RecipeEventsTopic())
	assert.Equal(t, "recipes", cfg.Elasticsearch.RecipesIndex())
	assert.Same(t, cfg, Get())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 8000
jwt:
  secret: from-file
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("APP_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9100, cfg.App.Port)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	path := writeConfig(t, `
app:
  name: foodgram-go
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSectionHelpers(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "foodgram", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=foodgram sslmode=disable", db.DSN())

	redis := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", redis.Addr())

	minio := MinIOConfig{Endpoint: "minio:9000", PublicEndpoint: "cdn.example.com", ImageBucket: "recipe-images", UseSSL: true}
	assert.Equal(t, "https://cdn.example.com/recipe-images/a.png", minio.PublicURL("a.png"))

	minio.PublicEndpoint = ""
	minio.UseSSL = false
	assert.Equal(t, "http://minio:9000/recipe-images/a.png", minio.PublicURL("a.png"))
}
