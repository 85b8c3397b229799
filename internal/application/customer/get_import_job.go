package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

type GetImportJobInput struct {
	ID string
}

type RejectedRecordOutput struct {
	Row    int64             `json:"row"`
	Data   map[string]string `json:"data"`
	Errors []string          `json:"errors"`
}

type GetImportJobOutput struct {
	JobID           string                 `json:"job_id"`
	Status          string                 `json:"status"`
	TotalRecords    int64                  `json:"total_records"`
	SuccessCount    int64                  `json:"success_count"`
	FailedCount     int64                  `json:"failed_count"`
	RejectedRecords []RejectedRecordOutput `json:"rejected_records"`
}

type GetImportJob interface {
	Execute(ctx context.Context, in GetImportJobInput) (GetImportJobOutput, error)
}

type importJobFinder interface {
	FindByID(ctx context.Context, id string) (*domain.ImportJob, error)
}

type getImportJob struct {
	jobs importJobFinder
}

func NewGetImportJob(jobs importJobFinder) GetImportJob {
	return &getImportJob{jobs: jobs}
}

func (uc *getImportJob) Execute(ctx context.Context, in GetImportJobInput) (GetImportJobOutput, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return GetImportJobOutput{}, ErrInvalidJobID
	}

	job, err := uc.jobs.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrImportJobNotFound) {
			return GetImportJobOutput{}, ErrImportJobNotFound
		}
		return GetImportJobOutput{}, fmt.Errorf("%w: %v", ErrGetImportJob, err)
	}

	rejected := make([]RejectedRecordOutput, 0, len(job.RejectedRecords))
	for _, r := range job.RejectedRecords {
		rejected = append(rejected, RejectedRecordOutput{
			Row:    r.Row,
			Data:   r.Data,
			Errors: r.Errors,
		})
	}

	return GetImportJobOutput{
		JobID:           job.ID,
		Status:          string(job.Status),
		TotalRecords:    job.TotalRecords,
		SuccessCount:    job.SuccessCount,
		FailedCount:     job.FailedCount,
		RejectedRecords: rejected,
	}, nil
}
