package customer

import "errors"

var (
	ErrNoFile            = errors.New("no file provided")
	ErrStoreUpload       = errors.New("failed to store uploaded file")
	ErrEnqueueImport     = errors.New("failed to enqueue import job")
	ErrInvalidJobID      = errors.New("invalid import job id")
	ErrImportJobNotFound = errors.New("import job not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrGetImportJob      = errors.New("failed to get import job")
	ErrListCustomers     = errors.New("failed to list customers")
	ErrGetCustomer       = errors.New("failed to get customer")
	ErrUpdateCustomer    = errors.New("failed to update customer")
	ErrDeleteCustomer    = errors.New("failed to delete customer")
)

// ValidationError carries the per-field messages of a rejected patch request.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
