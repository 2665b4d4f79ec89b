package decimo

import "errors"

var (
	ErrNotFound            = errors.New("decimo calculation not found")
	ErrAlreadyFullyPaid    = errors.New("decimo already fully paid, cannot modify")
	ErrInvalidYear         = errors.New("invalid decimo year")
	ErrInvalidTaxDivisor   = errors.New("tax share divisor must be 12 or 13")
	ErrNoInstallmentsToPay = errors.New("all installments are already paid")
)
