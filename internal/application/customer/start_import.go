package customer

import (
	"context"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type StartImportInput struct {
	FileName string
	File     io.Reader
}

type StartImportOutput struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type StartImport interface {
	Execute(ctx context.Context, in StartImportInput) (StartImportOutput, error)
}

// UploadStore persists an uploaded file and returns the path the worker will
// read it back from.
type UploadStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

type importJobCreator interface {
	Create(ctx context.Context) (*domain.ImportJob, error)
}

type ImportProducer interface {
	Enqueue(ctx context.Context, msg domain.ImportMessage) error
}

type startImport struct {
	uploads UploadStore
	jobs    importJobCreator
	queue   ImportProducer
}

func NewStartImport(uploads UploadStore, jobs importJobCreator, queue ImportProducer) StartImport {
	return &startImport{uploads: uploads, jobs: jobs, queue: queue}
}

func (uc *startImport) Execute(ctx context.Context, in StartImportInput) (StartImportOutput, error) {
	if in.File == nil {
		return StartImportOutput{}, ErrNoFile
	}

	path, err := uc.uploads.Save(ctx, in.FileName, in.File)
	if err != nil {
		return StartImportOutput{}, fmt.Errorf("%w: %v", ErrStoreUpload, err)
	}

	// The job is created before enqueueing so the caller knows the id to
	// poll even if the worker has not picked the message up yet.
	job, err := uc.jobs.Create(ctx)
	if err != nil {
		return StartImportOutput{}, fmt.Errorf("%w: %v", ErrEnqueueImport, err)
	}

	if err := uc.queue.Enqueue(ctx, domain.ImportMessage{
		FilePath:    path,
		ImportJobID: job.ID,
	}); err != nil {
		return StartImportOutput{}, fmt.Errorf("%w: %v", ErrEnqueueImport, err)
	}

	return StartImportOutput{
		JobID:  job.ID,
		Status: string(job.Status),
	}, nil
}
