package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/config"
)

func TestNewLedgerDisabledWithoutDatabase(t *testing.T) {
	ledger, err := newLedger(&config.Config{})

	require.NoError(t, err)
	assert.False(t, ledger.Enabled())
}
