// Package database opens the catalog's Postgres connection and owns its schema.
package database

import (
	"fmt"
	"slices"
	"time"

	"metadata-catalog/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune the connection pool and migration behaviour. Zero values take
// the defaults below.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Models returns the catalog models in dependency order: owners and
// definitions before the suites and cases that reference them.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Team{},
		&models.TestDefinition{},
		&models.TestSuite{},
		&models.TestCase{},
	}
}

// Tables returns the table names behind Models, in the same order.
func Tables() []string {
	return []string{
		models.User{}.TableName(),
		models.Team{}.TableName(),
		models.TestDefinition{}.TableName(),
		models.TestSuite{}.TableName(),
		models.TestCase{}.TableName(),
	}
}

// keysetIndexes back the per-suite test case listing, which filters on the
// suite and pages on the fully qualified name.
var keysetIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_test_cases_suite_fqn ON test_cases (test_suite_id, fully_qualified_name)`,
	`CREATE INDEX IF NOT EXISTS idx_test_suites_live_fqn ON test_suites (fully_qualified_name) WHERE NOT deleted`,
}

// nameIndexes make names usable as lookup keys; the seed loader and the
// owner lookups resolve these entities by name.
var nameIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_name ON users (name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name ON teams (name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_test_definitions_name ON test_definitions (name)`,
}

// Initialize opens a Postgres connection and, unless SkipMigrate is set,
// creates the catalog schema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)
	}

	if !o.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the catalog tables and their indexes.
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() default on BaseModel.ID
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, stmt := range slices.Concat(keysetIndexes, nameIndexes) {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
