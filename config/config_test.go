package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: notekeeper
  log:
    level: debug
http:
  port: 8081
storage:
  driver: SQLite
  autoMigrate: true
  sqlite:
    path: ./notes.db
secretKey:
  access: from-file
auth:
  bcryptCost: 4
  tokenTTL: 1h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "notekeeper", cfg.Env.ServiceName)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Storage.SQLite)
	assert.Equal(t, "./notes.db", cfg.Storage.SQLite.Path)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestNew_SQLiteDriverDoesNotRequirePostgres(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Nil(t, cfg.Postgres)
}

func TestNew_PostgresDriverRequiresPostgresSection(t *testing.T) {
	writeConfig(t, "secretKey:\n  access: x\n")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is required")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenTTL)
}
