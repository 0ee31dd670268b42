// Package postgres opens the relational Resource Store used when
// STORAGE_DRIVER=postgres. The connection is made through lib/pq and handed to
// GORM, which the dishrepo and orderrepo packages build on.
//
// Usage:
//
//	db, err := postgres.Open(ctx, dsn)
//	if err != nil {
//	    return err
//	}
//	if err := postgres.Migrate(db); err != nil {
//	    return err
//	}
//	dishes := dishrepo.NewGormDishRepository(db, kernel.NewID)
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/pkg/errs"

	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database described by dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errs.NewValueIsRequiredError("dsn")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), sqlDB.Close())
	}

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open gorm: %w", err), sqlDB.Close())
	}

	return db, nil
}

// Migrate creates or updates the dishes and orders tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&dishrepo.DishDTO{}, &orderrepo.OrderDTO{})
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
