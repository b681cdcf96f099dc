// Package server initializes and runs the verification server. It opens the
// record store, runs schema migrations, warms the in-memory index, and starts
// the gRPC endpoint with graceful shutdown on OS signals.
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

	"github.com/dmitrijs2005/certverify/internal/aiscore"
	"github.com/dmitrijs2005/certverify/internal/alerts"
	"github.com/dmitrijs2005/certverify/internal/index"
	"github.com/dmitrijs2005/certverify/internal/logging"
	"github.com/dmitrijs2005/certverify/internal/match"
	"github.com/dmitrijs2005/certverify/internal/ocr"
	"github.com/dmitrijs2005/certverify/internal/server/config"
	"github.com/dmitrijs2005/certverify/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/certverify/internal/server/services"

	gs "github.com/dmitrijs2005/certverify/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	verification *services.VerificationService
	ingestion    *services.IngestionService
	stats        *services.StatsService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	ix := index.NewRecordIndex()

	matcher := match.New(ix, match.Config{
		VerifiedThreshold: c.VerifiedThreshold,
		FlaggedThreshold:  c.FlaggedThreshold,
		ExactConfidence:   c.ExactConfidence,
		TopK:              c.TopK,
	})

	alertEngine := alerts.NewEngine(rm.Events(db), alerts.Config{
		Window:             c.AlertWindow,
		RejectionLimit:     c.AlertRejectionLimit,
		LowConfidenceFloor: c.AlertConfidenceFloor,
	}, logger)

	extractor := ocr.NewTesseract(c.OCRLanguages, c.OCRDPI)

	vs := services.NewVerificationService(db, rm, ix, matcher, extractor, alertEngine, aiscore.NoOp{}, logger)
	is := services.NewIngestionService(db, rm, ix, c, logger)
	ss := services.NewStatsService(db, rm, ix, c)

	return &App{config: c, logger: logger, db: db, verification: vs, ingestion: is, stats: ss}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.verification, app.ingestion, app.stats)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	if n, err := app.verification.ReloadIndex(ctx); err != nil {
		// The server still comes up so ReloadIndex can be retried over gRPC,
		// but Verify answers Unavailable until a reload succeeds.
		app.logger.Warn(ctx, "initial index load failed", "error", err)
	} else {
		app.logger.Info(ctx, "index warmed", "records", n)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
