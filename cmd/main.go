package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/specflow/quote-server/internal/api/http/router"
	httpServer "github.com/specflow/quote-server/internal/api/http/server"
	"github.com/specflow/quote-server/internal/config"
	"github.com/specflow/quote-server/internal/id"
	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/model"
	"github.com/specflow/quote-server/internal/pricing"
	"github.com/specflow/quote-server/internal/recommend"
	"github.com/specflow/quote-server/internal/repository/postgres"
	"github.com/specflow/quote-server/internal/server"
	"github.com/specflow/quote-server/internal/service"
	storage "github.com/specflow/quote-server/internal/storage/minio"
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

	tables := pricing.DefaultTables()
	if cfg.Pricing.TablesFile != "" {
		tables, err = pricing.LoadTables(cfg.Pricing.TablesFile)
		if err != nil {
			logger.Fatal("failed to load pricing tables", "error", err)
		}
	}

	var journal model.EstimateJournal
	if cfg.Journal.Enabled {
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize database", "error", err)
		}
		defer db.Close()
		journal = postgres.NewJournalRepository(db)
	}

	estimateService := service.NewEstimate(
		pricing.NewValidator(tables, cfg.Pricing.Strict),
		pricing.NewEngine(tables),
		journal,
		logger,
	)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	leadService := service.NewLead(storageClient, id.NewTimeRandom(), cfg.Storage.LeadPrefix, logger)

	if cfg.Admin.Secret == "" {
		logger.Warn("admin secret not configured, admin endpoints are disabled")
	}

	r := router.New(estimateService, leadService, recommend.DefaultRegistry(), cfg.Admin.Secret, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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
