package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env ni config.env

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "biztime-api", cfg.App.Name)
	assert.Equal(t, config.StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_FILE", "/tmp/biztime.log")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "/tmp/biztime.log", cfg.Log.File)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{
		Host: "db", Port: 5432, User: "biz", Password: "p@ss:word",
		DBName: "biztime", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://biz:p%40ss%3Aword@db:5432/biztime?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other/db"
	assert.Equal(t, "postgres://other/db", c.ConnectionString())
}
