package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configData := `
source:
  url: "https://example.com/banks"
  section_id: "By_market_capitalization"
  table_class: "wikitable"
  max_records: 5
  rate_limit: 1.5
  timeout_seconds: 15

rates:
  path: "rates/exchange_rate.csv"

output:
  csv_path: "out/banks.csv"
  log_path: "out/run.log"

database:
  driver: "sqlite"
  dsn: "out/Banks.db"
  table_name: "Largest_banks"
`
	err := os.WriteFile(configPath, []byte(configData), 0644)
	require.NoError(t, err)

	// Test loading config
	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	// Verify loaded values
	assert.Equal(t, "https://example.com/banks", config.Source.URL)
	assert.Equal(t, 5, config.Source.MaxRecords)
	assert.Equal(t, 1.5, config.Source.RateLimit)
	assert.Equal(t, 15, config.Source.TimeoutSec)
	assert.Equal(t, "rates/exchange_rate.csv", config.Rates.Path)
	assert.Equal(t, "out/banks.csv", config.Output.CSVPath)
	assert.Equal(t, "sqlite", config.Database.Driver)

	// Defaults fill the unset values
	assert.Equal(t, "Mozilla/5.0", config.Source.UserAgent)
}

func TestDefaultConfig(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, config)

	config, err = getDefaultConfig()
	require.NoError(t, err)

	assert.Equal(t, "By_market_capitalization", config.Source.SectionID)
	assert.Equal(t, "wikitable", config.Source.TableClass)
	assert.Equal(t, 10, config.Source.MaxRecords)
	assert.Equal(t, "exchange_rate.csv", config.Rates.Path)
	assert.Equal(t, "./Largest_banks_data.csv", config.Output.CSVPath)
	assert.Equal(t, "code_log.txt", config.Output.LogPath)
	assert.Equal(t, "sqlite", config.Database.Driver)
	assert.Equal(t, "Banks.db", config.Database.DSN)
	assert.Equal(t, "Largest_banks", config.Database.TableName)

	assert.Empty(t, config.Validate())
}

func TestConfigValidation(t *testing.T) {
	config, err := getDefaultConfig()
	require.NoError(t, err)

	config.Source.URL = "not a url"
	config.Source.MaxRecords = -1
	config.Database.Driver = "oracle"
	config.Output.LogPath = ""

	errors := config.Validate()
	require.Len(t, errors, 4)

	messages := make([]string, 0, len(errors))
	for _, e := range errors {
		messages = append(messages, e.Error())
	}
	assert.Contains(t, messages[0], "source.url")
	assert.Contains(t, messages[1], "max_records must be positive")
	assert.Contains(t, messages[2], "log_path")
	assert.Contains(t, messages[3], "unsupported driver: oracle")
}

func TestEnvironmentOverrides(t *testing.T) {
	// Set environment variables
	os.Setenv("BANKS_SOURCE_URL", "https://env.example.com/banks")
	os.Setenv("DATABASE_URL", "postgres://env-db:5432/banks")
	defer func() {
		os.Unsetenv("BANKS_SOURCE_URL")
		os.Unsetenv("DATABASE_URL")
	}()

	config := &Config{}
	mergeWithEnv(config)

	assert.Equal(t, "https://env.example.com/banks", config.Source.URL)
	assert.Equal(t, "postgres://env-db:5432/banks", config.Database.DSN)
}
