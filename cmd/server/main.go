package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"

	httpadapter "nexuscore/internal/adapters/http"
	"nexuscore/internal/adapters/memory"
	"nexuscore/internal/config"
	"nexuscore/internal/logging"
	"nexuscore/internal/ports"
	"nexuscore/internal/services/checks"
	reportsvc "nexuscore/internal/services/reports"
	sessionsvc "nexuscore/internal/services/session"
	reportworker "nexuscore/internal/workers/reportrunner"
)

func main() {
	cfg, cfgErr := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Warn("config", zap.Error(cfgErr))
	}

	policy, err := reportsvc.ParsePolicy(cfg.FailurePolicy)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db := memory.New()

	// Wire stores to services (ports)
	var _ ports.SessionStore = db
	var _ ports.JobRepository = db

	reports := reportsvc.New(checks.Default(),
		reportsvc.WithLogger(logger.Named("reports")),
		reportsvc.WithTimeout(cfg.CheckTimeout),
		reportsvc.WithPolicy(policy),
	)
	sessions := sessionsvc.New(db, logger.Named("sessions"))

	processor := reportworker.ReportProcessor{Reports: reports, Sessions: sessions}
	srv := httpadapter.New(sessions, db, processor, logger.Named("http"))
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background job workers
	workersDone := make(chan struct{})
	if cfg.ReportWorkers > 0 {
		go func() {
			reportworker.Run(ctx, db, processor, cfg.ReportWorkers, cfg.JobPoll, logger.Named("workers"))
			close(workersDone)
		}()
		logger.Info("report workers started", zap.Int("workers", cfg.ReportWorkers))
	} else {
		close(workersDone)
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}
	httpSrv := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.Int("max_conns", cfg.MaxConns))

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.Stringer("signal", sig))
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	}
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	_ = httpSrv.Shutdown(shutdownCtx)
	cancel()
	<-workersDone
}
