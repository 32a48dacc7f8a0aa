// Command server runs the clinic administration API.
//
// @title                       Clinic Admin API
// @version                     1.0
// @description                 Patient, staff, payroll and finance administration with role and permission gating.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/api"
	"github.com/carepoint/clinic-admin/internal/api/handler"
	"github.com/carepoint/clinic-admin/internal/core/service"
	"github.com/carepoint/clinic-admin/internal/infrastructure/db/mongo"
	"github.com/carepoint/clinic-admin/internal/infrastructure/db/redis"
	"github.com/carepoint/clinic-admin/internal/infrastructure/queue"
	"github.com/carepoint/clinic-admin/internal/pkg/config"
	"github.com/carepoint/clinic-admin/pkg/logger"
)

const shutdownGrace = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "clinic-admin",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.Disconnect(client); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	dbAdmin := mongo.NewAdmin(db)
	if err := dbAdmin.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	patientRepo := mongo.NewPatientRepository(db)
	staffRepo := mongo.NewStaffRepository(db)
	payrollRepo := mongo.NewPayrollRepository(db)
	expenseRepo := mongo.NewExpenseRepository(db)
	paymentRepo := mongo.NewPaymentRepository(db)
	settingsRepo := mongo.NewSettingsRepository(db)
	auditRepo := mongo.NewAuditRepository(db)
	sessions := redis.NewSessionStore(rdb)

	// --- Audit trail ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, logger.Component("audit"))
	audit.Start(workerCtx)
	defer func() {
		cancelWorkers()
		audit.Wait()
	}()

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth"))
	userService := service.NewUserService(userRepo, sessions, audit, logger.Component("users"))
	if err := userService.EnsureAdmin(ctx, cfg.Bootstrap.Username, cfg.Bootstrap.Password); err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Users:    userService,
		Patients: service.NewPatientService(patientRepo, audit, logger.Component("patients")),
		Staff:    service.NewStaffService(staffRepo, audit, logger.Component("staff")),
		Payroll:  service.NewPayrollService(payrollRepo, staffRepo, audit, logger.Component("payroll")),
		Finance:  service.NewFinanceService(expenseRepo, paymentRepo, patientRepo, audit, logger.Component("finance")),
		Reports:  service.NewReportService(patientRepo, expenseRepo, paymentRepo, payrollRepo),
		Settings: service.NewSettingsService(settingsRepo, audit, logger.Component("settings")),
		Database: dbAdmin,
		Audit:    auditRepo,
		Checks: map[string]handler.CheckFunc{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		LoginRatePerMin: cfg.LoginRatePerMin,
		Log:             logger.Component("http"),
	})

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		serverErrors <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return e.Shutdown(sctx)
}
