package customer

import "errors"

var (
	ErrImportJobNotFound = errors.New("import job not found")
	ErrCustomerNotFound  = errors.New("customer not found")
)
