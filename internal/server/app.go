// Package server initializes and runs the PlanWise server: it opens the
// credential store, wires services into the gRPC endpoint, serves metrics
// and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/planwise/internal/logging"
	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/config"
	"github.com/dmitrijs2005/planwise/internal/server/observability"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/planwise/internal/server/services"
	"github.com/sethvargo/go-retry"

	gs "github.com/dmitrijs2005/planwise/internal/server/grpc"
)

var (
	sqlOpen = sql.Open

	// connectBackoff bounds how long startup waits for the database.
	connectBackoff = func() retry.Backoff {
		return retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	}
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	credentials *services.CredentialService
	admins      *services.AdminService
	roster      *services.RosterService
	metrics     *observability.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, rm, err := openStore(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	tokens := services.NewTokenIssuer(c)

	app := &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		credentials: services.NewCredentialService(db, rm, hasher, tokens),
		admins:      services.NewAdminService(db, rm, hasher, tokens, services.NewS3AvatarStorage(c)),
		roster:      services.NewRosterService(db, rm),
	}
	app.metrics = observability.NewServer(c.MetricsAddr, logger, app.ping)

	return app, nil
}

// openStore returns the in-memory store for config.MemoryDSN; otherwise it
// connects to Postgres, retrying while the database comes up, and migrates it.
func openStore(ctx context.Context, c *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == config.MemoryDSN {
		logger.Warn(ctx, "Using in-memory store, data will not survive a restart")
		return nil, repomanager.NewMemoryRepositoryManager(), nil
	}

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	err = retry.Do(ctx, connectBackoff(), func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			logger.Warn(ctx, "Database not ready, retrying", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	return db, rm, nil
}

func (app *App) ping(ctx context.Context) error {
	if app.db == nil {
		return nil
	}
	return app.db.PingContext(ctx)
}

// initSignalHandler cancels on the first shutdown signal. The returned
// channel closes once the watcher has stopped listening.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(sigs)

		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
	return done
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.credentials, app.admins, app.roster, app.config.SecretKey, app.metrics.Metrics())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if app.config.MetricsAddr == "" {
		return
	}
	if err := app.metrics.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	sigDone := app.initSignalHandler(ctx, cancelFunc)
	defer func() {
		cancelFunc()
		<-sigDone
	}()

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "error closing database", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
