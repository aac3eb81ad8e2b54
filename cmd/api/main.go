package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	cacheadp "loan-ledger/internal/adapter/cache"
	httpadp "loan-ledger/internal/adapter/http"
	idemp "loan-ledger/internal/adapter/middleware"
	"loan-ledger/internal/adapter/repository/mysql"
	"loan-ledger/internal/config"
	"loan-ledger/internal/infrastructure/cache"
	"loan-ledger/internal/infrastructure/db"
	"loan-ledger/internal/observability"
	ucLoan "loan-ledger/internal/usecase/loan"
	"loan-ledger/pkg/id"
)

func main() {
	cfg := config.Load()
	log := observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	gdb, err := openDB(cfg)
	if err != nil {
		log.Error("database unavailable", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Error("redis unavailable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	loans := mysql.NewLoanRepository(gdb)
	borrowers := mysql.NewBorrowerRepository(gdb)
	uc := ucLoan.NewUsecase(loans, borrowers, mysql.NewGormUoW(gdb),
		ucLoan.WithLogger(log),
		ucLoan.WithCache(cacheadp.NewLoanViewCache(rdb, time.Duration(cfg.LoanCacheTTLSecs)*time.Second)))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}))
	e.Use(middleware.Logger(), middleware.Recover())

	sqlDB, err := gdb.DB()
	if err != nil {
		log.Error("database handle unavailable", "error", err)
		os.Exit(1)
	}
	health := httpadp.NewHandler(
		httpadp.Check{Name: "db", Ping: sqlDB.PingContext},
		httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	httpadp.RegisterRoutes(e, health,
		httpadp.NewLoanHandler(uc, cfg.DefaultPageSize, cfg.MaxPageSize),
		idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", "addr", addr, "env", cfg.AppEnv, "driver", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	level := db.WithLogLevel(observability.ParseLevel(cfg.LogLevel))
	if cfg.DBDriver == config.DriverSQLite {
		return db.OpenSQLite(cfg.SQLitePath, level)
	}
	return db.OpenGorm(cfg.MySQLDSN(), level)
}
