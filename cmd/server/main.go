package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stellar/internal/adapters/ephemeris"
	httpadapter "stellar/internal/adapters/http"
	pg "stellar/internal/adapters/postgres"
	"stellar/internal/ashtakoota"
	"stellar/internal/config"
	"stellar/internal/logging"
	"stellar/internal/ports"
	compatsvc "stellar/internal/services/compatibility"
	profsvc "stellar/internal/services/profiles"
	"stellar/internal/workers/matchrunner"
)

func main() {
	cfg, err := config.Load()
	log, logErr := logging.New(cfg.Env, cfg.LogLevel)
	if logErr != nil {
		panic(logErr)
	}
	defer log.Sync()
	if err != nil {
		log.Warn("config", zap.Error(err))
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	// Wire repositories to services (ports)
	var _ ports.PersonRepository = db
	var _ ports.JobRepository = db
	results := &pg.ResultStore{DB: db}

	var eph ports.Ephemeris
	if cfg.EphemerisURL != "" {
		eph = ephemeris.NewClient(cfg.EphemerisURL)
	}

	engine := ashtakoota.NewEngine()
	compat := compatsvc.New(db, results, engine, log)
	profiles := profsvc.New(db, eph)

	srv := httpadapter.New(compat, profiles, db, log)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background precompute workers
	if cfg.MatchWorkers > 0 {
		matchrunner.Run(ctx, db, matchrunner.ReportProcessor{Compat: compat}, cfg.MatchWorkers, 500*time.Millisecond, log)
		log.Info("match workers started", zap.Int("count", cfg.MatchWorkers))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal("server error", zap.Error(err))
	}
}
