package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/nft-holders/internal/adapter"
	"github.com/feral-file/nft-holders/internal/config"
	"github.com/feral-file/nft-holders/internal/holders"
	"github.com/feral-file/nft-holders/internal/logger"
	"github.com/feral-file/nft-holders/internal/providers/ergo"
	"github.com/feral-file/nft-holders/internal/report"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	outputFile = flag.String("output", "", "Path of the CSV report, overrides output_file")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadHoldersConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *outputFile != "" {
		cfg.OutputFile = *outputFile
	}

	runID := ulid.Make().String()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "nft-holders",
			"run_id":  runID,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Cancel the run on interrupt; the report is then not written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx, runID)

	logger.InfoCtx(ctx, "Starting NFT holder snapshot",
		zap.String("explorer", cfg.Explorer.BaseURL),
		zap.String("collection_token", cfg.CollectionToken),
		zap.Int("batch_limit", cfg.BatchLimit),
		zap.Uint64("max_retries", cfg.Explorer.MaxRetries),
		zap.Duration("retry_delay", cfg.Explorer.RetryDelay),
		zap.String("output_file", cfg.OutputFile),
	)

	// Initialize HTTP client
	httpClient := adapter.NewHTTPClient(cfg.Explorer.HTTPTimeout, adapter.RetryPolicy{
		MaxRetries: cfg.Explorer.MaxRetries,
		Delay:      cfg.Explorer.RetryDelay,
	})

	// Initialize explorer client
	explorer := ergo.NewExplorerClient(cfg.Explorer.BaseURL, httpClient)

	// Initialize report writer
	writer := report.NewCSVWriter(adapter.NewFileSystem(), cfg.OutputFile)

	pipeline := holders.NewPipeline(holders.Config{
		CollectionToken: cfg.CollectionToken,
		BatchLimit:      cfg.BatchLimit,
		TxConcurrency:   cfg.TxConcurrency,
	}, explorer, writer)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		logger.Flush(2 * time.Second)
		logger.FatalCtx(ctx, "NFT holder snapshot failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "NFT holder snapshot finished",
		zap.Int("spent_boxes", summary.SpentBoxes),
		zap.Int("transactions", summary.Transactions),
		zap.Int("nfts_processed", summary.Mints),
		zap.Int("nfts_with_address", summary.Holders),
		zap.String("output_file", summary.OutputFile),
	)
}
