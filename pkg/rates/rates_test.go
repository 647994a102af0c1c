package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exchange_rate.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRateFile(t, "Currency,Rate\nGBP,0.8\nEUR,0.93\nINR,82.95\nJPY,145.71\n")

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.8, table["GBP"])
	assert.Equal(t, 0.93, table["EUR"])
	assert.Equal(t, 82.95, table["INR"])
	assert.Equal(t, 145.71, table["JPY"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.csv"))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeRateFile(t, "Code,Value\nGBP,0.8\n")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "Currency and Rate")
}

func TestLoadMissingRequiredCurrency(t *testing.T) {
	path := writeRateFile(t, "Currency,Rate\nGBP,0.8\nEUR,0.93\n")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "missing INR rate")
}

func TestLoadInvalidRate(t *testing.T) {
	path := writeRateFile(t, "Currency,Rate\nGBP,eighty\nEUR,0.93\nINR,82.95\n")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	path := writeRateFile(t, "Rate,Currency\n0.8,GBP\n0.93,EUR\n82.95,INR\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, table["GBP"])
}
