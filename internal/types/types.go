package types

import (
	"github.com/xhad/banks/internal/models"
)

// Core interfaces
type Extractor interface {
	Extract(url string) ([]models.BankRecord, error)
}

type Store interface {
	Replace(records []models.EnrichedBankRecord) error
	Run(query string) (*QueryResult, error)
	Close()
}

// QueryResult is a fully materialized result set of a read query,
// ready to be rendered to the console.
type QueryResult struct {
	Query   string
	Columns []string
	Rows    [][]string
}
