package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source struct {
		URL        string  `yaml:"url"`
		SectionID  string  `yaml:"section_id"`
		TableClass string  `yaml:"table_class"`
		UserAgent  string  `yaml:"user_agent"`
		MaxRecords int     `yaml:"max_records"`
		RateLimit  float64 `yaml:"rate_limit"`
		TimeoutSec int     `yaml:"timeout_seconds"`
	} `yaml:"source"`

	Rates struct {
		Path string `yaml:"path"`
	} `yaml:"rates"`

	Output struct {
		CSVPath string `yaml:"csv_path"`
		LogPath string `yaml:"log_path"`
	} `yaml:"output"`

	Database struct {
		Driver    string `yaml:"driver"`
		DSN       string `yaml:"dsn"`
		TableName string `yaml:"table_name"`
	} `yaml:"database"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/banks/config.yaml"),
			"/etc/banks/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	applyDefaults(config)
	mergeWithEnv(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Source.URL == "" {
		config.Source.URL = "https://web.archive.org/web/20230908091635/https://en.wikipedia.org/wiki/List_of_largest_banks"
	}
	if config.Source.SectionID == "" {
		config.Source.SectionID = "By_market_capitalization"
	}
	if config.Source.TableClass == "" {
		config.Source.TableClass = "wikitable"
	}
	if config.Source.UserAgent == "" {
		config.Source.UserAgent = "Mozilla/5.0"
	}
	if config.Source.MaxRecords == 0 {
		config.Source.MaxRecords = 10
	}
	if config.Source.RateLimit == 0 {
		config.Source.RateLimit = 2.0
	}
	if config.Source.TimeoutSec == 0 {
		config.Source.TimeoutSec = 30
	}

	if config.Rates.Path == "" {
		config.Rates.Path = "exchange_rate.csv"
	}

	if config.Output.CSVPath == "" {
		config.Output.CSVPath = "./Largest_banks_data.csv"
	}
	if config.Output.LogPath == "" {
		config.Output.LogPath = "code_log.txt"
	}

	if config.Database.Driver == "" {
		config.Database.Driver = "sqlite"
	}
	if config.Database.DSN == "" {
		config.Database.DSN = "Banks.db"
	}
	if config.Database.TableName == "" {
		config.Database.TableName = "Largest_banks"
	}
}

func mergeWithEnv(config *Config) {
	if url := os.Getenv("BANKS_SOURCE_URL"); url != "" {
		config.Source.URL = url
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		config.Database.DSN = dsn
	}
}
