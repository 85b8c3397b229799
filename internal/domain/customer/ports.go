package customer

import "context"

// ImportMessage is the queue payload handed from the upload endpoint to the
// import worker.
type ImportMessage struct {
	FilePath    string `json:"file_path"`
	ImportJobID string `json:"import_job_id"`
}

// RowReader is a lazy, finite, forward-only sequence of data rows derived
// from a header row. Next returns io.EOF after the last row; any other error
// means the rest of the file is unreadable.
type RowReader interface {
	Next() (map[string]string, error)
	Close() error
}

type ImportJobStore interface {
	Create(ctx context.Context) (*ImportJob, error)
	FindByID(ctx context.Context, id string) (*ImportJob, error)
	Save(ctx context.Context, job *ImportJob) error
}

// RowInsertError attributes one failed row of a bulk insert by its index in
// the submitted slice.
type RowInsertError struct {
	Index   int
	Message string
}

type BulkInsertResult struct {
	Inserted int
	Failed   []RowInsertError
}

// CustomerBulkInserter persists a batch of customers with unordered
// semantics: individual row failures do not abort the rest of the batch. An
// error return means the whole batch failed with no per-row detail.
type CustomerBulkInserter interface {
	BulkInsert(ctx context.Context, customers []Customer) (BulkInsertResult, error)
}

type CustomerRepository interface {
	List(ctx context.Context, offset, limit int) ([]Customer, int64, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, update PatchUpdate) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
