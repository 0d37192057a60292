package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "warehouse")
	t.Setenv("DB_NAME", "warehouse")
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies_defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig("")

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, 10*time.Minute, cfg.RedisTTL)
		assert.Equal(t, 50, cfg.UnitsPerPage)
		assert.Equal(t, "0 */5 * * * *", cfg.StockSummarySchedule)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("reads_env_file", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("UNITS_PER_PAGE", "")
		os.Unsetenv("UNITS_PER_PAGE")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("UNITS_PER_PAGE=20\nREDIS_ADDR=localhost:6379\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("REDIS_ADDR")
			os.Unsetenv("UNITS_PER_PAGE")
		})

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.UnitsPerPage)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	})

	t.Run("missing_env_file_is_ignored", func(t *testing.T) {
		setRequiredEnv(t)

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

		require.NoError(t, err)
	})

	t.Run("missing_database_settings_fail", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		os.Unsetenv("DB_HOST")

		_, err := LoadConfig("")

		require.Error(t, err)
	})

	t.Run("invalid_schedule_fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("STOCK_SUMMARY_SCHEDULE", "every five minutes")

		_, err := LoadConfig("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "STOCK_SUMMARY_SCHEDULE")
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "w", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=w sslmode=disable", cfg.DSN())
}
