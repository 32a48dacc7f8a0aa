package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/carepoint/clinic-admin/docs"
	"github.com/carepoint/clinic-admin/internal/api/handler"
	"github.com/carepoint/clinic-admin/internal/api/middleware"
	"github.com/carepoint/clinic-admin/internal/core/access"
	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	Auth     ports.AuthService
	Users    ports.UserService
	Patients ports.PatientService
	Staff    ports.StaffService
	Payroll  ports.PayrollService
	Finance  ports.FinanceService
	Reports  ports.ReportService
	Settings ports.SettingsService
	Database ports.DatabaseAdmin
	Audit    handler.AuditReader

	// Checks are the readiness probes keyed by dependency name.
	Checks map[string]handler.CheckFunc

	// LoginRatePerMin caps login attempts per client IP.
	LoginRatePerMin int
	Log             zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	// HTTP metrics live in a registry per router; /metrics merges them with
	// the application metrics registered on the default registry.
	httpMetrics := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clinic",
		Registerer: httpMetrics,
	}))
	e.Use(middleware.Authenticate(d.Auth, d.Log))

	// --- Ops endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Checks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/login", authHandler.Login, loginLimiter(d.LoginRatePerMin))
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, middleware.RequireActive())

	// Guards are attached per route rather than on the group so unknown
	// /v1 paths still answer 404.
	v1 := e.Group("/v1")
	active := middleware.RequireActive()
	view := func(p domain.Permission) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{active, middleware.RequirePermission(p)}
	}

	users := handler.NewUserHandler(d.Users)
	v1.GET("/users", users.List, view(domain.PermViewUsers)...)
	v1.POST("/users", users.Create, view(domain.PermManageUsers)...)
	v1.PATCH("/users/:id", users.Update, view(domain.PermManageUsers)...)

	patients := handler.NewPatientHandler(d.Patients)
	v1.GET("/patients", patients.List, view(domain.PermViewPatients)...)
	v1.POST("/patients", patients.Admit, view(domain.PermManagePatients)...)
	v1.GET("/patients/:id", patients.Get, view(domain.PermViewPatients)...)
	v1.POST("/patients/:id/discharge", patients.Discharge, view(domain.PermManagePatients)...)

	staff := handler.NewStaffHandler(d.Staff)
	v1.GET("/staff", staff.List, view(domain.PermViewStaff)...)
	v1.POST("/staff", staff.Create, view(domain.PermManageStaff)...)
	v1.GET("/staff/:id", staff.Get, view(domain.PermViewStaff)...)

	payroll := handler.NewPayrollHandler(d.Payroll)
	v1.GET("/payroll/adjustments", payroll.ListAdjustments, view(domain.PermViewPayroll)...)
	v1.POST("/payroll/adjustments", payroll.AddAdjustment, view(domain.PermManagePayroll)...)
	v1.GET("/payroll/summary", payroll.Summary, view(domain.PermViewPayroll)...)

	finance := handler.NewFinanceHandler(d.Finance)
	v1.GET("/expenses", finance.ListExpenses, view(domain.PermViewFinance)...)
	v1.POST("/expenses", finance.LogExpense, view(domain.PermManageFinance)...)
	v1.GET("/payments", finance.ListPayments, view(domain.PermViewFinance)...)
	v1.POST("/payments", finance.RecordPayment, view(domain.PermManageFinance)...)

	reports := handler.NewReportHandler(d.Reports)
	v1.GET("/reports/summary", reports.Summary, view(domain.PermViewReports)...)
	v1.GET("/dashboard", reports.Dashboard, active,
		middleware.Require(access.AnyOf(domain.PermViewReports, domain.PermViewFinance),
			middleware.WithFallback(reports.DashboardFallback)))

	settings := handler.NewSettingsHandler(d.Settings)
	v1.GET("/settings", settings.Get, view(domain.PermViewSettings)...)
	v1.PUT("/settings", settings.Update, view(domain.PermManageSettings)...)

	db := handler.NewDatabaseHandler(d.Database, d.Audit)
	v1.GET("/database/status", db.Status, view(domain.PermViewDatabase)...)
	v1.GET("/database/audit", db.Audit, view(domain.PermViewDatabase)...)
	v1.POST("/database/indexes", db.EnsureIndexes, active,
		middleware.Require(access.AllOf(domain.PermManageDatabase, domain.PermViewDatabase)))

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// loginLimiter throttles login attempts per client IP.
func loginLimiter(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 10
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 5 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many login attempts"})
		},
	})
}
