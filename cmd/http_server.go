package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-directory/internal/employee/postgres"
	"github.com/frahmantamala/employee-directory/internal/organization"
	organizationPostgres "github.com/frahmantamala/employee-directory/internal/organization/postgres"
	"github.com/frahmantamala/employee-directory/internal/ratelimit"
	ratelimitPostgres "github.com/frahmantamala/employee-directory/internal/ratelimit/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/frahmantamala/employee-directory/internal/transport/rest"
	"github.com/frahmantamala/employee-directory/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle directory search requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config  *internal.Config
	DB      *sqlx.DB
	GormDB  *gorm.DB
	Router  *chi.Mux
	Logger  *slog.Logger
	Limiter *ratelimit.Limiter

	OrganizationService *organization.Service
	OrganizationHandler *organization.Handler
	EmployeeHandler     *employee.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.OrganizationHandler,
		deps.EmployeeHandler,
		deps.Limiter,
		deps.OrganizationService,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db pool: %w", err)
	}

	organizationRepo := organizationPostgres.NewOrganizationRepository(gormDB)
	organizationService := organization.NewService(organizationRepo, appLogger)

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	employeeService := employee.NewService(employeeRepo, organizationService, appLogger)

	limiterStore := ratelimitPostgres.NewRateLimitStore(gormDB)
	limiter := ratelimit.NewLimiter(limiterStore, config.RateLimit, appLogger)

	baseHandler := transport.NewBaseHandler(appLogger)

	return &Dependencies{
		Config:  config,
		Logger:  appLogger,
		DB:      db,
		GormDB:  gormDB,
		Router:  chi.NewRouter(),
		Limiter: limiter,

		OrganizationService: organizationService,
		OrganizationHandler: organization.NewHandler(baseHandler, organizationService),
		EmployeeHandler:     employee.NewHandler(baseHandler, employeeService),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
