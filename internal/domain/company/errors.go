package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrRUCExists       = errors.New("RUC already registered")
)
