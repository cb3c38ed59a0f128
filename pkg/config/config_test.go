package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  name: storefront-api
  host: 127.0.0.1
  port: 9090

database:
  host: db.internal
  port: 5432
  username: shop
  password: secret
  database: storefront
  ssl_mode: require
  statement_timeout: 3s
  max_open_conns: 10

redis:
  enabled: true
  addr: cache.internal:6379
  cache_ttl: 30s

mongodb:
  enabled: false
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "storefront-api", cfg.Server.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Database.StatementTimeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.False(t, cfg.MongoDB.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDSNFromFields(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.internal port=5432 user=shop password=secret dbname=storefront sslmode=require",
		cfg.Database.DSN())
}

func TestDatabaseURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@neon.example/storefront")

	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@neon.example/storefront", cfg.Database.DSN())
}
