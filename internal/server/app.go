// Package server wires the agenda server: configuration, logging, the
// PostgreSQL pool, schema migrations, services and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/agenda/internal/logging"
	"github.com/dmitrijs2005/agenda/internal/server/config"
	"github.com/dmitrijs2005/agenda/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/agenda/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/agenda/internal/server/grpc"
)

// seams for tests
var (
	openDB = func(dsn string) (*sql.DB, error) { return sql.Open("pgx", dsn) }

	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	contactService *services.ContactService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, logging.ParseLevel(c.LogLevel), true)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()

	return &App{
		config:         c,
		logger:         logger.With("app", "agenda-server"),
		db:             db,
		repomanager:    rm,
		userService:    services.NewUserService(db, rm, c),
		contactService: services.NewContactService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context) error {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.contactService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}

// Run migrates the schema and serves until ctx is cancelled or a signal
// arrives. The database pool is closed on return.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.startGRPCServer(gctx) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("grpc server error: %w", err)
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
