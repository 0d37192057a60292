// Package pgtest starts a throwaway PostgreSQL container with the schema
// applied. It is imported by integration tests only.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/pkg/logger"
	"warehouse/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database is a migrated database inside a running container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("connection string: %w", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = migrations.Up(ctx, sqlDB, logger.Discard()); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties all tables and restarts their id sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE order_units, unit_comments, unit_logs, units,
		orders, users, stocks, device_models, vendors, companies RESTART IDENTITY CASCADE`).Error
}

// Seed is the reference data inserted by SeedReferences. Ids are stable after
// Truncate.
type Seed struct {
	CompanyID      int64
	OtherCompanyID int64
	VendorID       int64
	ModelID        int64
	StockID        int64
	OtherStockID   int64
	UserID         int64
	InstallerID    int64
	OrderID        int64
}

// SeedReferences inserts one row set of reference data: two companies, a
// vendor with one model, two stocks, two users and one order.
func (d *Database) SeedReferences() (Seed, error) {
	stmts := []string{
		`INSERT INTO companies (name) VALUES ('Main Telecom'), ('Partner Net')`,
		`INSERT INTO vendors (name) VALUES ('MikroTik')`,
		`INSERT INTO device_models (name, vendor_id, type_id) VALUES ('RB951', 1, 2)`,
		`INSERT INTO stocks (name) VALUES ('Main warehouse'), ('Van 3')`,
		`INSERT INTO users (first_name, last_name, middle_name) VALUES
			('Ivan', 'Sidorov', 'Petrovich'), ('Pavel', 'Petrov', 'Sergeevich')`,
		`INSERT INTO orders (title) VALUES ('Install router, Lenina 5')`,
	}
	for _, stmt := range stmts {
		if err := d.DB.Exec(stmt).Error; err != nil {
			return Seed{}, err
		}
	}
	return Seed{
		CompanyID:      1,
		OtherCompanyID: 2,
		VendorID:       1,
		ModelID:        1,
		StockID:        1,
		OtherStockID:   2,
		UserID:         1,
		InstallerID:    2,
		OrderID:        1,
	}, nil
}
