package port

import "wordlens/internal/domain"

// ReportStore persists analysis reports between runs.
type ReportStore interface {
	PutReport(r domain.StoredReport) error

	GetReport(id string) (domain.StoredReport, error)

	FindByHash(hash string) (domain.StoredReport, bool, error)

	ListReports() ([]domain.StoredReport, error)

	DeleteReport(id string) error

	Close() error
}
