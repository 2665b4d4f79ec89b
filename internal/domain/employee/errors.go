package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrCedulaExists            = errors.New("cedula already registered in this company")
	ErrInvalidCedula           = errors.New("invalid cedula format")
	ErrInvalidBaseSalary       = errors.New("base salary must be positive")
	ErrInvalidDeductionMode    = errors.New("unknown custom deduction mode")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrUnauthorized            = errors.New("unauthorized to access this employee")
)
