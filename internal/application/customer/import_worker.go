package customer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type ImportSource interface {
	Open(ctx context.Context, sourcePath string) (domain.RowReader, error)
}

type importQueueConsumer interface {
	Dequeue(ctx context.Context, block time.Duration) (*domain.ImportMessage, error)
}

type importJobStore interface {
	FindByID(ctx context.Context, id string) (*domain.ImportJob, error)
	Save(ctx context.Context, job *domain.ImportJob) error
}

type ImportWorkerConfig struct {
	Workers     int
	BatchSize   int
	PollTimeout time.Duration
}

// ImportWorker consumes the import queue and runs one job at a time per
// worker goroutine: claim, stream, flush per batch, finalize. Row order is
// strictly preserved within a job; distinct jobs run concurrently.
type ImportWorker struct {
	jobs   importJobStore
	queue  importQueueConsumer
	source ImportSource
	store  domain.CustomerBulkInserter
	cfg    ImportWorkerConfig
	log    *zap.Logger

	once sync.Once
}

func NewImportWorker(
	jobs importJobStore,
	queue importQueueConsumer,
	source ImportSource,
	store domain.CustomerBulkInserter,
	cfg ImportWorkerConfig,
	log *zap.Logger,
) *ImportWorker {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &ImportWorker{
		jobs:   jobs,
		queue:  queue,
		source: source,
		store:  store,
		cfg:    cfg,
		log:    log,
	}
}

func (w *ImportWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			go w.workerLoop(ctx)
		}
	})
}

func (w *ImportWorker) workerLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := w.queue.Dequeue(ctx, w.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.log.Error("dequeue import job failed", zap.Error(err))
			if !sleepWithContext(ctx, w.cfg.PollTimeout) {
				return
			}
			continue
		}

		if msg == nil {
			continue
		}

		job, err := w.ProcessJob(ctx, *msg)
		if err != nil {
			w.log.Error("process import job failed",
				zap.String("job_id", msg.ImportJobID),
				zap.Error(err))
			continue
		}

		w.log.Info("import job finished",
			zap.String("job_id", job.ID),
			zap.String("status", string(job.Status)),
			zap.Int64("total", job.TotalRecords),
			zap.Int64("succeeded", job.SuccessCount),
			zap.Int64("failed", job.FailedCount))
	}
}

// ProcessJob runs one delivered queue message to completion and returns the
// finalized job record. It returns an error on fatal failures (job missing,
// unreadable source, lost checkpoint); the queue applies its own retry or
// dead-letter policy to those. Row-level validation and persistence failures
// are recorded on the job and are never returned as errors.
func (w *ImportWorker) ProcessJob(ctx context.Context, msg domain.ImportMessage) (*domain.ImportJob, error) {
	job, err := w.jobs.FindByID(ctx, msg.ImportJobID)
	if err != nil {
		return nil, fmt.Errorf("load import job %s: %w", msg.ImportJobID, err)
	}

	job.Start()
	if err := w.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("save claimed job: %w", err)
	}

	rowNumber := int64(1)

	reader, err := w.source.Open(ctx, msg.FilePath)
	if err != nil {
		return nil, w.failJob(ctx, job, rowNumber, fmt.Errorf("open import source: %w", err))
	}
	defer reader.Close()

	batch := NewBatch(w.cfg.BatchSize)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Settle rows already read so the terminal counts still add
			// up to totalRecords, then record the fatal error.
			batch.Flush(ctx, job, w.store)
			return nil, w.failJob(ctx, job, rowNumber, fmt.Errorf("read row %d: %w", rowNumber, err))
		}

		job.CountRow()
		batch.Add(rowNumber, row, domain.ValidateRow(row))

		if batch.Full() {
			batch.Flush(ctx, job, w.store)
			if err := w.jobs.Save(ctx, job); err != nil {
				return nil, fmt.Errorf("checkpoint after flush: %w", err)
			}
		}

		rowNumber++
	}

	batch.Flush(ctx, job, w.store)

	job.Complete()
	if err := w.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("save completed job: %w", err)
	}

	return job, nil
}

// failJob records the fatal error as a synthetic rejected row, persists the
// failed state and returns the original cause for the queue to act on.
func (w *ImportWorker) failJob(ctx context.Context, job *domain.ImportJob, rowNumber int64, cause error) error {
	job.FailFatal(rowNumber, cause)
	if saveErr := w.jobs.Save(ctx, job); saveErr != nil {
		return fmt.Errorf("%v; save failed job: %w", cause, saveErr)
	}
	return cause
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
