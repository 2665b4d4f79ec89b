package payroll

import "errors"

var (
	ErrEntryNotFound     = errors.New("payroll entry not found")
	ErrEntryAlreadyPaid  = errors.New("payroll entry already paid, cannot modify")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrInvalidPeriodType = errors.New("period type must be 'biweekly' or 'monthly'")
	ErrNegativeAmount    = errors.New("amounts must be non-negative")
	ErrInvalidTransition = errors.New("invalid payroll entry status transition")
	ErrCannotDeletePaid  = errors.New("cannot delete paid payroll entry")
	ErrEmployeeNotActive = errors.New("employee is not active")
)
