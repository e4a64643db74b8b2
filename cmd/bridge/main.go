package main

import (
	"context"
	"dweb-bridge/domain"
	"dweb-bridge/infrastructure/ant"
	"dweb-bridge/infrastructure/anttp"
	"dweb-bridge/infrastructure/storage"
	"dweb-bridge/infrastructure/ws"
	"dweb-bridge/internal"
	"dweb-bridge/internal/clock"
	"dweb-bridge/runtime/workers"
	"dweb-bridge/services"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	shutdownTimeout = 10 * time.Second
	inspectEndpoint = "/inspect"
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bridge terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, serves clients until a signal arrives, then drains in-flight work.
// Deferred cleanups (database, temp files) always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment alone is enough.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Receipts database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, inspectEndpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, inspectEndpoint, ReceiptMapper)
	}

	// 4. Services
	realClock := clock.Real()
	expiredChan := make(chan domain.UploadExpired, 64)

	fetcher := anttp.NewClient(logger, anttp.Options{
		BaseURL: "http://" + config.BackendAddress(),
		Timeout: config.FetchTimeout,
	})
	uploader := ant.NewUploader(logger, config.AntBinPath)
	receipts := storage.NewReceiptRepository(db, logger)

	queue := services.NewDownloadQueue(ctx, logger, fetcher, config.MaxConcurrent)
	accumulator := services.NewUploadAccumulator(logger, realClock, config.UploadExpiration, expiredChan)
	finalizer := services.NewUploadFinalizer(logger, uploader, receipts, config.TempDir, config.KeepTempFiles, realClock)
	uploads := services.NewUploadService(logger, accumulator, finalizer)

	gateway := ws.NewGateway(logger, queue, uploads, ws.NewRegistry(), ws.Options{
		MaxTotalChunks:       config.MaxTotalChunks,
		MaxMessageSize:       config.MaxMessageSize,
		WriteTimeout:         config.WriteTimeout,
		DefaultUploadOptions: config.DefaultUploadOptions(),
	})

	// 5. Supervised workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(
		workers.NewExpirationWorker(logger, expiredChan, config.NotifyUploadExpiry),
		workers.NewHealthMonitorWorker(logger, gateway, config.MonitorInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(supervisorDone)
	}()

	// 6. HTTP / WebSocket server
	server := &http.Server{
		Addr:              config.ListenAddress(),
		Handler:           gateway.Handler(),
		ReadHeaderTimeout: config.HeadersTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting websocket server", "address", server.Addr, "backend", config.BackendAddress(),
			"max_concurrent", config.MaxConcurrent, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 8. Graceful shutdown: stop accepting, close sessions, drain fetches and uploads
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}
	gateway.Shutdown()
	stop()
	supervisor.Stop()
	<-supervisorDone
	queue.Wait()
	uploads.Wait()
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	if config.ReceiptsDBPath == "" {
		logger.Info("No RECEIPTS_DB_PATH, upload receipts are kept in memory")
		return badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	options := badger.DefaultOptions(config.ReceiptsDBPath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		// The inspector reads the same files
		return options.WithLoggingLevel(badger.DEBUG).WithBypassLockGuard(true)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// ReceiptMapper renders a receipt row for the Badger inspector.
func ReceiptMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	if !storage.IsReceiptKey(key) {
		row.Type = "INDEX"
		row.Detail = string(val)
		return row
	}

	receipt, err := storage.DecodeReceipt(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = "RECEIPT"
	row.Detail = fmt.Sprintf("%s (%s, %d bytes) -> %s", receipt.Filename, receipt.DetectedMimeType, receipt.Size, receipt.Xorname)
	return row
}
