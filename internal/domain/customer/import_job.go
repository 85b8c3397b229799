package customer

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// RejectedRecord captures one row that failed validation or persistence.
// Data holds the original raw row verbatim for operator inspection.
type RejectedRecord struct {
	Row    int64
	Data   map[string]string
	Errors []string
}

// ImportJob tracks one import run for one uploaded file. It is mutated only
// by the single worker that claimed it; counts and the rejected list grow
// monotonically and the status flips exactly once to a terminal value.
type ImportJob struct {
	ID              string
	Status          Status
	TotalRecords    int64
	SuccessCount    int64
	FailedCount     int64
	RejectedRecords []RejectedRecord
}

func (j *ImportJob) Start() {
	j.Status = StatusProcessing
}

// CountRow registers one data row read from the source.
func (j *ImportJob) CountRow() {
	j.TotalRecords++
}

func (j *ImportJob) RecordSuccess(n int64) {
	if n > 0 {
		j.SuccessCount += n
	}
}

func (j *ImportJob) RecordRejection(row int64, data map[string]string, errs []string) {
	j.FailedCount++
	j.RejectedRecords = append(j.RejectedRecords, RejectedRecord{
		Row:    row,
		Data:   data,
		Errors: errs,
	})
}

func (j *ImportJob) Complete() {
	j.Status = StatusCompleted
}

// FailFatal terminates the job after an unrecoverable stream error. The
// synthetic rejected row counts toward TotalRecords so that
// SuccessCount+FailedCount == TotalRecords holds in the terminal state.
func (j *ImportJob) FailFatal(row int64, cause error) {
	j.Status = StatusFailed
	j.TotalRecords++
	j.RecordRejection(row, map[string]string{}, []string{cause.Error()})
}

func (j *ImportJob) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusFailed
}
