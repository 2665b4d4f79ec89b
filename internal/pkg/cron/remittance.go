package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/planillapa/planilla-backend-go/internal/domain/company"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
)

// RemittanceJobs watches SIPE payments that are still pending past their due
// date. Late remittances accrue CSS surcharges, so the log line is the nudge.
type RemittanceJobs struct {
	companyRepo company.CompanyRepository
	sipeRepo    sipe.SIPERepository
}

func NewRemittanceJobs(companyRepo company.CompanyRepository, sipeRepo sipe.SIPERepository) *RemittanceJobs {
	return &RemittanceJobs{
		companyRepo: companyRepo,
		sipeRepo:    sipeRepo,
	}
}

// RegisterJobs registers all remittance-related cron jobs
func (j *RemittanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Every(12*time.Hour, "report_overdue_remittances", j.ReportOverdueRemittances)
}

// ReportOverdueRemittances logs every pending SIPE payment whose due date has
// passed, per company.
func (j *RemittanceJobs) ReportOverdueRemittances(ctx context.Context) error {
	companies, err := j.companyRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, c := range companies {
		payments, err := j.sipeRepo.GetByCompanyID(ctx, c.ID)
		if err != nil {
			slog.Error("Failed to list SIPE payments", "company_id", c.ID, "error", err)
			continue
		}

		for _, p := range payments {
			if p.Status != sipe.StatusPending || !p.DueDate.Before(now) {
				continue
			}
			slog.Warn("SIPE payment overdue",
				"company_id", c.ID,
				"company", c.Name,
				"period", p.Period,
				"due_date", p.DueDate.Format(time.DateOnly),
				"total_due", p.Totals.TotalDue().StringFixed(2),
			)
		}
	}

	return nil
}
