package payroll

import "context"

// PayrollRepository defines data access methods for payroll entries.
// All methods include companyID to prevent cross-company data access.
type PayrollRepository interface {
	// UpsertEntry replaces any existing entry for the same employee and period.
	UpsertEntry(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	GetEntryByID(ctx context.Context, id string, companyID string) (PayrollEntry, error)
	GetEntryByEmployeePeriod(ctx context.Context, employeeID string, period string, companyID string) (PayrollEntry, error)
	GetEntriesByCompanyID(ctx context.Context, companyID string) ([]PayrollEntry, error)
	ListEntries(ctx context.Context, companyID string, filter EntryFilter) ([]PayrollEntry, int64, error)
	SetEntriesStatus(ctx context.Context, ids []string, companyID string, status EntryStatus) error
	DeleteEntry(ctx context.Context, id string, companyID string) error
}
