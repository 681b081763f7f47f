package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/cirrustranslate/console/internal/console/assist"
	httpapi "github.com/cirrustranslate/console/internal/console/http"
	"github.com/cirrustranslate/console/internal/console/service"
	"github.com/cirrustranslate/console/internal/console/store"
	"github.com/cirrustranslate/console/internal/console/store/drivers/sqlite"
	"github.com/cirrustranslate/console/pkg/cryptox"
	"github.com/cirrustranslate/console/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the console's store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *SessionKeys

	bootstrapService    *service.BootstrapService
	sessionService      *service.SessionService
	inviteService       *service.InviteService
	clientService       *service.ClientService
	translatorService   *service.TranslatorService
	projectService      *service.ProjectService
	workflowService     *service.WorkflowService
	dashboardService    *service.DashboardService
	snapshotService     *service.SnapshotService
	housekeepingService *service.HousekeepingService
	assistService       *assist.Service

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "console",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cryptox.LoadPepper(cfg.PepperFile); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := InitSessionKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("console starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down console...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("console stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: app.keys.Signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.inviteService = &service.InviteService{
		Store:     app.db,
		PublicURL: app.cfg.PublicURL,
		TTL:       app.cfg.InviteTTL,
	}
	app.clientService = &service.ClientService{Store: app.db, Invites: app.inviteService}
	app.translatorService = &service.TranslatorService{Store: app.db, Invites: app.inviteService}
	app.projectService = &service.ProjectService{Store: app.db}
	app.workflowService = &service.WorkflowService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}
	app.snapshotService = &service.SnapshotService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	app.assistService = &assist.Service{
		Limiter: rate.NewLimiter(rate.Every(app.cfg.AssistRate), app.cfg.AssistBurst),
	}
	if app.cfg.GeminiAPIKey != "" {
		app.assistService.Provider = assist.NewGemini(assist.GeminiConfig{
			APIKey:     app.cfg.GeminiAPIKey,
			Model:      app.cfg.GeminiModel,
			BaseURL:    app.cfg.GeminiURL,
			HTTPClient: &http.Client{Timeout: 60 * time.Second},
		})
		app.logger.Info("translation assist enabled", "model", app.cfg.GeminiModel)
	} else {
		app.logger.Warn("GEMINI_API_KEY not set; translation assist returns fallback text")
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.BootstrapService = app.bootstrapService
	router.SessionService = app.sessionService
	router.InviteService = app.inviteService
	router.ClientService = app.clientService
	router.TranslatorService = app.translatorService
	router.ProjectService = app.projectService
	router.WorkflowService = app.workflowService
	router.DashboardService = app.dashboardService
	router.SnapshotService = app.snapshotService
	router.AssistService = app.assistService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
