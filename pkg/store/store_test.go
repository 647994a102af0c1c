package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/banks/internal/models"
)

func memoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewWithConfig(StoreConfig{
		Driver: "sqlite",
		DSN:    ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func testRecords() []models.EnrichedBankRecord {
	return []models.EnrichedBankRecord{
		{BankRecord: models.BankRecord{Name: "Acme Bank", MarketCapUSD: 12.5}, MarketCapGBP: 10.0, MarketCapEUR: 11.63, MarketCapINR: 1038.75},
		{BankRecord: models.BankRecord{Name: "Beta Bank", MarketCapUSD: 25.0}, MarketCapGBP: 20.0, MarketCapEUR: 23.25, MarketCapINR: 2077.5},
		{BankRecord: models.BankRecord{Name: "Gamma Bank", MarketCapUSD: 37.5}, MarketCapGBP: 30.0, MarketCapEUR: 34.88, MarketCapINR: 3116.25},
	}
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewWithConfig(StoreConfig{Driver: "oracle", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store driver")
}

func TestReplaceAndSelectAll(t *testing.T) {
	s := memoryStore(t)

	require.NoError(t, s.Replace(testRecords()))

	result, err := s.Run("SELECT * FROM Largest_banks")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "MC_USD_Billion", "MC_GBP_Billion", "MC_EUR_Billion", "MC_INR_Billion"}, result.Columns)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Acme Bank", result.Rows[0][0])
	assert.Equal(t, "12.5", result.Rows[0][1])
}

func TestReplaceIsIdempotent(t *testing.T) {
	s := memoryStore(t)

	require.NoError(t, s.Replace(testRecords()))
	require.NoError(t, s.Replace(testRecords()))

	result, err := s.Run("SELECT * FROM Largest_banks")
	require.NoError(t, err)
	assert.Len(t, result.Rows, 3)
}

func TestAverageQuery(t *testing.T) {
	s := memoryStore(t)

	require.NoError(t, s.Replace(testRecords()))

	result, err := s.Run("SELECT AVG(MC_GBP_Billion) FROM Largest_banks")
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "20", result.Rows[0][0])
}

func TestLimitQuery(t *testing.T) {
	s := memoryStore(t)

	require.NoError(t, s.Replace(testRecords()))

	result, err := s.Run("SELECT Name FROM Largest_banks LIMIT 5")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, result.Columns)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, [][]string{{"Acme Bank"}, {"Beta Bank"}, {"Gamma Bank"}}, result.Rows)
}

func TestQueryAgainstMissingTable(t *testing.T) {
	s := memoryStore(t)

	_, err := s.Run("SELECT * FROM Largest_banks")
	assert.Error(t, err)
}
