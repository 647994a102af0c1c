package config

import (
	"fmt"
	"net/url"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Source config
	if c.Source.URL == "" {
		errors = append(errors, ValidationError{
			Field:   "source.url",
			Message: "document URL is required",
		})
	} else if u, err := url.Parse(c.Source.URL); err != nil || u.Scheme == "" {
		errors = append(errors, ValidationError{
			Field:   "source.url",
			Message: "invalid document URL",
		})
	}

	if c.Source.SectionID == "" {
		errors = append(errors, ValidationError{
			Field:   "source.section_id",
			Message: "section identifier is required",
		})
	}

	if c.Source.MaxRecords < 1 {
		errors = append(errors, ValidationError{
			Field:   "source.max_records",
			Message: "max_records must be positive",
		})
	}

	if c.Source.RateLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "source.rate_limit",
			Message: "rate_limit must be positive",
		})
	}

	if c.Source.TimeoutSec < 1 {
		errors = append(errors, ValidationError{
			Field:   "source.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	// Validate Rates config
	if c.Rates.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "rates.path",
			Message: "exchange rate file path is required",
		})
	}

	// Validate Output config
	if c.Output.CSVPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.csv_path",
			Message: "output CSV path is required",
		})
	}

	if c.Output.LogPath == "" {
		errors = append(errors, ValidationError{
			Field:   "output.log_path",
			Message: "log file path is required",
		})
	}

	// Validate Database config
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		errors = append(errors, ValidationError{
			Field:   "database.driver",
			Message: fmt.Sprintf("unsupported driver: %s", c.Database.Driver),
		})
	}

	if c.Database.DSN == "" {
		errors = append(errors, ValidationError{
			Field:   "database.dsn",
			Message: "database DSN is required",
		})
	}

	if c.Database.TableName == "" {
		errors = append(errors, ValidationError{
			Field:   "database.table_name",
			Message: "table name is required",
		})
	}

	return errors
}
