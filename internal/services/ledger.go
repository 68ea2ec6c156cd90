package services

import (
	"errors"
	"log/slog"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/repositories"
)

var ErrLedgerDisabled = errors.New("analysis ledger is not configured")

// Ledger keeps per-submission metadata. It is write-only on the submission
// path and never answers a submission from stored data.
type Ledger interface {
	Record(record *models.AnalysisRecord)
	Stats() (*models.AnalysisStats, error)
	Enabled() bool
}

type dbLedger struct {
	repo repositories.AnalysisRepository
	log  *slog.Logger
}

func NewLedger(repo repositories.AnalysisRepository, log *slog.Logger) Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &dbLedger{repo: repo, log: log}
}

// Record logs write failures and otherwise ignores them.
func (l *dbLedger) Record(record *models.AnalysisRecord) {
	if err := l.repo.Create(record); err != nil {
		l.log.Error("failed to record analysis", "id", record.ID, "status", record.Status, "error", err)
	}
}

func (l *dbLedger) Stats() (*models.AnalysisStats, error) {
	return l.repo.Stats()
}

func (l *dbLedger) Enabled() bool { return true }

type noopLedger struct{}

func NewNoopLedger() Ledger { return noopLedger{} }

func (noopLedger) Record(*models.AnalysisRecord) {}

func (noopLedger) Stats() (*models.AnalysisStats, error) { return nil, ErrLedgerDisabled }

func (noopLedger) Enabled() bool { return false }
