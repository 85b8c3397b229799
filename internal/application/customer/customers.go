package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type CustomerOutput struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Timezone    string `json:"timezone"`
}

func toCustomerOutput(c domain.Customer) CustomerOutput {
	return CustomerOutput{
		ID:          c.ID,
		FullName:    c.FullName,
		Email:       c.Email,
		DateOfBirth: c.DateOfBirth.Format("2006-01-02"),
		Timezone:    c.Timezone,
	}
}

type ListCustomersInput struct {
	Page  int
	Limit int
}

type ListCustomersOutput struct {
	Data  []CustomerOutput `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type ListCustomers interface {
	Execute(ctx context.Context, in ListCustomersInput) (ListCustomersOutput, error)
}

type listCustomers struct {
	repo domain.CustomerRepository
}

func NewListCustomers(repo domain.CustomerRepository) ListCustomers {
	return &listCustomers{repo: repo}
}

func (uc *listCustomers) Execute(ctx context.Context, in ListCustomersInput) (ListCustomersOutput, error) {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	customers, total, err := uc.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return ListCustomersOutput{}, fmt.Errorf("%w: %v", ErrListCustomers, err)
	}

	data := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		data = append(data, toCustomerOutput(c))
	}

	return ListCustomersOutput{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

type GetCustomerInput struct {
	ID string
}

type GetCustomer interface {
	Execute(ctx context.Context, in GetCustomerInput) (CustomerOutput, error)
}

type getCustomer struct {
	repo domain.CustomerRepository
}

func NewGetCustomer(repo domain.CustomerRepository) GetCustomer {
	return &getCustomer{repo: repo}
}

func (uc *getCustomer) Execute(ctx context.Context, in GetCustomerInput) (CustomerOutput, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return CustomerOutput{}, ErrInvalidCustomerID
	}

	c, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return CustomerOutput{}, ErrCustomerNotFound
		}
		return CustomerOutput{}, fmt.Errorf("%w: %v", ErrGetCustomer, err)
	}

	return toCustomerOutput(*c), nil
}

type UpdateCustomerInput struct {
	ID          string
	FullName    *string
	Email       *string
	DateOfBirth *string
	Timezone    *string
}

type UpdateCustomer interface {
	Execute(ctx context.Context, in UpdateCustomerInput) (CustomerOutput, error)
}

type updateCustomer struct {
	repo domain.CustomerRepository
}

func NewUpdateCustomer(repo domain.CustomerRepository) UpdateCustomer {
	return &updateCustomer{repo: repo}
}

func (uc *updateCustomer) Execute(ctx context.Context, in UpdateCustomerInput) (CustomerOutput, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return CustomerOutput{}, ErrInvalidCustomerID
	}

	update, validationErrs := domain.ValidatePatch(domain.PatchFields{
		FullName:    in.FullName,
		Email:       in.Email,
		DateOfBirth: in.DateOfBirth,
		Timezone:    in.Timezone,
	})
	if len(validationErrs) > 0 {
		return CustomerOutput{}, &ValidationError{Details: validationErrs}
	}

	c, err := uc.repo.Update(ctx, in.ID, update)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return CustomerOutput{}, ErrCustomerNotFound
		}
		return CustomerOutput{}, fmt.Errorf("%w: %v", ErrUpdateCustomer, err)
	}

	return toCustomerOutput(*c), nil
}

type DeleteCustomerInput struct {
	ID string
}

type DeleteCustomer interface {
	Execute(ctx context.Context, in DeleteCustomerInput) error
}

type deleteCustomer struct {
	repo domain.CustomerRepository
}

func NewDeleteCustomer(repo domain.CustomerRepository) DeleteCustomer {
	return &deleteCustomer{repo: repo}
}

func (uc *deleteCustomer) Execute(ctx context.Context, in DeleteCustomerInput) error {
	if _, err := uuid.Parse(in.ID); err != nil {
		return ErrInvalidCustomerID
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("%w: %v", ErrDeleteCustomer, err)
	}

	return nil
}
