package db

import (
	"log/slog"
	"time"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/loan"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Option func(*gorm.Config)

// WithLogLevel maps an application log level onto gorm's logger.
func WithLogLevel(level slog.Level) Option {
	return func(c *gorm.Config) {
		c.Logger = logger.Default.LogMode(gormLevel(level))
	}
}

func gormLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level >= slog.LevelError:
		return logger.Error
	default:
		return logger.Warn
	}
}

func OpenGorm(dsn string, opts ...Option) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), opts...)
}

func OpenSQLite(path string, opts ...Option) (*gorm.DB, error) {
	db, err := OpenGormWithDialector(sqlite.Open(path), opts...)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; keep the one connection alive so :memory: survives
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	return db, nil
}

func OpenGormWithDialector(d gorm.Dialector, opts ...Option) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	for _, o := range opts {
		o(cfg)
	}
	db, err := gorm.Open(d, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", d.Name())
	return db, nil
}

// Migrate creates or updates the users, loans and loan_users tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&borrower.Borrower{}, &loan.Loan{})
}
