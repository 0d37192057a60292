package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-required:"true"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-required:"true"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-required:"true"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`

	// An empty RedisAddr disables the reference cache.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL" env-default:"10m"`

	UnitsPerPage         int    `env:"UNITS_PER_PAGE" env-default:"50"`
	StockSummarySchedule string `env:"STOCK_SUMMARY_SCHEDULE" env-default:"0 */5 * * * *"`
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.UnitsPerPage <= 0 {
		errs = append(errs, fmt.Errorf("UNITS_PER_PAGE must be positive, got %d", c.UnitsPerPage))
	}
	if c.RedisAddr != "" && c.RedisTTL <= 0 {
		errs = append(errs, fmt.Errorf("REDIS_TTL must be positive, got %s", c.RedisTTL))
	}
	if c.StockSummarySchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := parser.Parse(c.StockSummarySchedule); err != nil {
			errs = append(errs, fmt.Errorf("STOCK_SUMMARY_SCHEDULE: %w", err))
		}
	}
	return errors.Join(errs...)
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
