package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/db/models"
)

type ImportJobRepository struct {
	db *gorm.DB
}

func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{db: db}
}

func (r *ImportJobRepository) Create(ctx context.Context) (*domain.ImportJob, error) {
	row := models.ImportJob{
		Status:          string(domain.StatusPending),
		RejectedRecords: models.RejectedRecordList{},
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create import job: %w", err)
	}

	return toDomainJob(&row), nil
}

func (r *ImportJobRepository) FindByID(ctx context.Context, id string) (*domain.ImportJob, error) {
	var row models.ImportJob

	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImportJobNotFound
		}
		return nil, fmt.Errorf("find import job: %w", err)
	}

	return toDomainJob(&row), nil
}

// Save writes a checkpoint of the job's counts, status and rejected list.
func (r *ImportJobRepository) Save(ctx context.Context, job *domain.ImportJob) error {
	rejected := make(models.RejectedRecordList, 0, len(job.RejectedRecords))
	for _, rec := range job.RejectedRecords {
		rejected = append(rejected, models.RejectedRecord{
			Row:    rec.Row,
			Data:   rec.Data,
			Errors: rec.Errors,
		})
	}

	result := r.db.WithContext(ctx).
		Model(&models.ImportJob{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":           string(job.Status),
			"total_records":    job.TotalRecords,
			"success_count":    job.SuccessCount,
			"failed_count":     job.FailedCount,
			"rejected_records": rejected,
		})
	if result.Error != nil {
		return fmt.Errorf("save import job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrImportJobNotFound
	}

	return nil
}

func toDomainJob(row *models.ImportJob) *domain.ImportJob {
	rejected := make([]domain.RejectedRecord, 0, len(row.RejectedRecords))
	for _, rec := range row.RejectedRecords {
		rejected = append(rejected, domain.RejectedRecord{
			Row:    rec.Row,
			Data:   rec.Data,
			Errors: rec.Errors,
		})
	}

	return &domain.ImportJob{
		ID:              row.ID,
		Status:          domain.Status(row.Status),
		TotalRecords:    row.TotalRecords,
		SuccessCount:    row.SuccessCount,
		FailedCount:     row.FailedCount,
		RejectedRecords: rejected,
	}
}
