package company

import "time"

type Company struct {
	ID        string
	Name      string
	RUC       string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
