package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/models"
)

type fakeAnalysisRepo struct {
	created []*models.AnalysisRecord
	err     error
}

func (r *fakeAnalysisRepo) Create(record *models.AnalysisRecord) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, record)
	return nil
}

func (r *fakeAnalysisRepo) Stats() (*models.AnalysisStats, error) {
	return &models.AnalysisStats{Total: int64(len(r.created))}, nil
}

func TestLedgerRecords(t *testing.T) {
	repo := &fakeAnalysisRepo{}
	ledger := NewLedger(repo, nil)

	ledger.Record(&models.AnalysisRecord{ID: uuid.New(), Status: models.StatusCompleted})

	require.Len(t, repo.created, 1)
	stats, err := ledger.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.True(t, ledger.Enabled())
}

func TestLedgerSwallowsWriteErrors(t *testing.T) {
	ledger := NewLedger(&fakeAnalysisRepo{err: errors.New("db down")}, nil)

	assert.NotPanics(t, func() {
		ledger.Record(&models.AnalysisRecord{ID: uuid.New(), Status: models.StatusFailed})
	})
}

func TestNoopLedger(t *testing.T) {
	ledger := NewNoopLedger()

	ledger.Record(&models.AnalysisRecord{})
	_, err := ledger.Stats()

	assert.ErrorIs(t, err, ErrLedgerDisabled)
	assert.False(t, ledger.Enabled())
}
