package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	app "github.com/mohammadpnp/customer-import/internal/application/customer"
	"github.com/mohammadpnp/customer-import/internal/bootstrap"
	"github.com/mohammadpnp/customer-import/internal/config"
	infrafile "github.com/mohammadpnp/customer-import/internal/infrastructure/file"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/queue"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/repository"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	importQueue := queue.NewRedisQueue(rdb)
	uploads := infrafile.NewLocalStore(cfg.UploadDir)

	server := bootstrap.NewHTTPServer(db, uploads, importQueue)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	worker := app.NewImportWorker(
		repository.NewImportJobRepository(db),
		importQueue,
		// Queue messages carry the stored path as returned by the upload
		// store, so the source resolves relative to the working directory.
		infrafile.NewCSVSource(""),
		repository.NewCustomerBulkInsertRepository(pool),
		app.ImportWorkerConfig{
			Workers:   cfg.ImportWorkers,
			BatchSize: cfg.ImportBatchSize,
		},
		logger,
	)
	worker.Start(workerCtx)

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("graceful shutdown failed", zap.Error(err))
	}
}
