package sipe

import "errors"

var (
	ErrPaymentNotFound = errors.New("SIPE payment not found")
	ErrAlreadyPaid     = errors.New("SIPE payment already marked paid")
	ErrInvalidPeriod   = errors.New("invalid SIPE period, must be YYYY-MM")
)
