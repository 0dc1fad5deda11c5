package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	httpctx "github.com/dtroode/pollkeeper/internal/api/http/context"
	"github.com/dtroode/pollkeeper/internal/api/http/router"
	"github.com/dtroode/pollkeeper/internal/config"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/repository/postgres"
	"github.com/dtroode/pollkeeper/internal/server"
	"github.com/dtroode/pollkeeper/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	pollRepo := postgres.NewPollRepository(db)

	authService := service.NewAuth(pollRepo, logger)
	pollService := service.NewPoll(pollRepo, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, pollService, db, ctxMgr, cfg.HTTP.CORSOrigins, logger)
	httpServer := server.NewHTTPServer(r.Register(), cfg.HTTP.Address, cfg.HTTP.ReadHeaderTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
