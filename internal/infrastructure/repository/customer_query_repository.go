package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/db/models"
)

type CustomerQueryRepository struct {
	db *gorm.DB
}

func NewCustomerQueryRepository(db *gorm.DB) *CustomerQueryRepository {
	return &CustomerQueryRepository{db: db}
}

func (r *CustomerQueryRepository) List(ctx context.Context, offset, limit int) ([]domain.Customer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, *toDomainCustomer(&rows[i]))
	}

	return customers, total, nil
}

func (r *CustomerQueryRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var row models.Customer

	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return toDomainCustomer(&row), nil
}

func (r *CustomerQueryRepository) Update(ctx context.Context, id string, update domain.PatchUpdate) (*domain.Customer, error) {
	values := map[string]any{}
	if update.FullName != nil {
		values["full_name"] = *update.FullName
	}
	if update.Email != nil {
		values["email"] = *update.Email
	}
	if update.DateOfBirth != nil {
		values["date_of_birth"] = *update.DateOfBirth
	}
	if update.Timezone != nil {
		values["timezone"] = *update.Timezone
	}

	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, fmt.Errorf("update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrCustomerNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *CustomerQueryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func toDomainCustomer(row *models.Customer) *domain.Customer {
	return &domain.Customer{
		ID:          row.ID,
		FullName:    row.FullName,
		Email:       row.Email,
		DateOfBirth: row.DateOfBirth,
		Timezone:    row.Timezone,
	}
}
