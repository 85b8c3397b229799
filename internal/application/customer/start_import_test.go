package customer_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	app "github.com/mohammadpnp/customer-import/internal/application/customer"
	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type fakeUploadStore struct {
	path    string
	saveErr error
	gotName string
	content string
}

func (f *fakeUploadStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	f.gotName = name
	data, _ := io.ReadAll(r)
	f.content = string(data)
	if f.saveErr != nil {
		return "", f.saveErr
	}
	return f.path, nil
}

type fakeJobCreator struct {
	job       *domain.ImportJob
	createErr error
	called    bool
}

func (f *fakeJobCreator) Create(ctx context.Context) (*domain.ImportJob, error) {
	f.called = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.job, nil
}

type fakeProducer struct {
	enqueued   []domain.ImportMessage
	enqueueErr error
}

func (f *fakeProducer) Enqueue(ctx context.Context, msg domain.ImportMessage) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.enqueued = append(f.enqueued, msg)
	return nil
}

func TestStartImportSuccess(t *testing.T) {
	t.Parallel()

	uploads := &fakeUploadStore{path: "uploads/abc.csv"}
	jobs := &fakeJobCreator{job: &domain.ImportJob{ID: "job-1", Status: domain.StatusPending}}
	producer := &fakeProducer{}

	uc := app.NewStartImport(uploads, jobs, producer)

	out, err := uc.Execute(context.Background(), app.StartImportInput{
		FileName: "customers.csv",
		File:     strings.NewReader("full_name,email\n"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.JobID != "job-1" {
		t.Fatalf("unexpected job id: %s", out.JobID)
	}
	if out.Status != "pending" {
		t.Fatalf("unexpected status: %s", out.Status)
	}
	if uploads.gotName != "customers.csv" {
		t.Fatalf("unexpected upload name: %s", uploads.gotName)
	}
	if len(producer.enqueued) != 1 {
		t.Fatalf("expected one enqueued message, got %d", len(producer.enqueued))
	}
	msg := producer.enqueued[0]
	if msg.FilePath != "uploads/abc.csv" || msg.ImportJobID != "job-1" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestStartImportNoFile(t *testing.T) {
	t.Parallel()

	uc := app.NewStartImport(&fakeUploadStore{}, &fakeJobCreator{}, &fakeProducer{})

	_, err := uc.Execute(context.Background(), app.StartImportInput{FileName: "customers.csv"})
	if !errors.Is(err, app.ErrNoFile) {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}

func TestStartImportUploadFailure(t *testing.T) {
	t.Parallel()

	uploads := &fakeUploadStore{saveErr: errors.New("disk full")}
	jobs := &fakeJobCreator{}

	uc := app.NewStartImport(uploads, jobs, &fakeProducer{})

	_, err := uc.Execute(context.Background(), app.StartImportInput{
		FileName: "customers.csv",
		File:     strings.NewReader("data"),
	})
	if !errors.Is(err, app.ErrStoreUpload) {
		t.Fatalf("expected ErrStoreUpload, got %v", err)
	}
	if jobs.called {
		t.Fatal("job must not be created when the upload fails")
	}
}

func TestStartImportEnqueueFailure(t *testing.T) {
	t.Parallel()

	uploads := &fakeUploadStore{path: "uploads/abc.csv"}
	jobs := &fakeJobCreator{job: &domain.ImportJob{ID: "job-1", Status: domain.StatusPending}}
	producer := &fakeProducer{enqueueErr: errors.New("redis down")}

	uc := app.NewStartImport(uploads, jobs, producer)

	_, err := uc.Execute(context.Background(), app.StartImportInput{
		FileName: "customers.csv",
		File:     strings.NewReader("data"),
	})
	if !errors.Is(err, app.ErrEnqueueImport) {
		t.Fatalf("expected ErrEnqueueImport, got %v", err)
	}
}
