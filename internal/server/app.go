// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires the auth and notes
// services and starts the HTTP API with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/anvydev/notekeeper/internal/logging"
	"github.com/anvydev/notekeeper/internal/server/auth"
	"github.com/anvydev/notekeeper/internal/server/config"
	"github.com/anvydev/notekeeper/internal/server/httpapi"
	"github.com/anvydev/notekeeper/internal/server/repositories/repomanager"
	"github.com/anvydev/notekeeper/internal/server/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	httpServer   *httpapi.HTTPServer
	authService  *services.AuthService
	notesService *services.NotesService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if cfg.UsingDefaultSecret() {
		logger.Warn(ctx, "JWT_SECRET is not configured, using the built-in default; session tokens are forgeable")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	as := services.NewAuthService(rm.Users(db), hasher, tokens)
	ns := services.NewNotesService(rm.Notes(db))

	hs := httpapi.NewHTTPServer(cfg, logger, as, ns, tokens)

	return &App{
		config:       cfg,
		logger:       logger,
		db:           db,
		httpServer:   hs,
		authService:  as,
		notesService: ns,
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
