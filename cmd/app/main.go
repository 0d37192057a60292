package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/pkg/logger"
	"warehouse/migrations"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	if err = migrations.Up(ctx, sqlDB, log); err != nil {
		return err
	}

	redisClient, err := openRedis(ctx, cfg, log)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	app := cmd.NewCompositionRoot(cfg, gormDB, redisClient, log)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newEcho(ctx, app, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openDatabase(cfg cmd.Config, log *slog.Logger) (*gorm.DB, error) {
	gormLog := gormlogger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// openRedis returns nil when no address is configured.
func openRedis(ctx context.Context, cfg cmd.Config, log *slog.Logger) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Info("reference cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
	}
	log.Info("reference cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
	return client, nil
}

func newEcho(ctx context.Context, app cmd.CompositionRoot, log *slog.Logger) (*echo.Echo, error) {
	doc, err := httpadapter.LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	if err = httpadapter.RegisterSwagger(doc); err != nil {
		return nil, err
	}
	validator, err := httpadapter.OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.OFF)

	e.Use(
		middleware.Recover(),
		httpadapter.RequestID(),
		httpadapter.RequestLogger(log),
		validator,
		httpadapter.Actor(),
	)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	app.CreateHTTPServer().RegisterRoutes(e)
	return e, nil
}
