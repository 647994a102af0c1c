package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/xhad/banks/internal/models"
	"github.com/xhad/banks/internal/types"
)

type StoreConfig struct {
	Driver    string // "sqlite" (local single-file DB) or "postgres"
	DSN       string
	TableName string
}

type Store struct {
	config StoreConfig
	db     *sql.DB
}

func NewWithConfig(config StoreConfig) (*Store, error) {
	if config.Driver == "" {
		config.Driver = "sqlite"
	}
	if config.TableName == "" {
		config.TableName = "Largest_banks"
	}

	driverName, ok := map[string]string{
		"sqlite":   "sqlite",
		"postgres": "pgx",
	}[config.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported store driver: %s", config.Driver)
	}

	db, err := sql.Open(driverName, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if config.Driver == "sqlite" {
		// Single writer; also keeps :memory: databases on one connection.
		db.SetMaxOpenConns(1)
	}

	return &Store{
		config: config,
		db:     db,
	}, nil
}

// Replace drops any prior table of the configured name and writes the
// records as a fresh table, all inside one transaction. Running it
// twice with the same input leaves the same row count.
func (s *Store) Replace(records []models.EnrichedBankRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, s.config.TableName)); err != nil {
		return fmt.Errorf("failed to drop table: %v", err)
	}

	createTable := fmt.Sprintf(`
		CREATE TABLE %s (
			Name TEXT NOT NULL,
			MC_USD_Billion DOUBLE PRECISION,
			MC_GBP_Billion DOUBLE PRECISION,
			MC_EUR_Billion DOUBLE PRECISION,
			MC_INR_Billion DOUBLE PRECISION
		)`, s.config.TableName)

	if _, err := tx.Exec(createTable); err != nil {
		return fmt.Errorf("failed to create table: %v", err)
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		s.config.TableName,
		strings.Join(models.Columns, ", "),
		s.placeholders(len(models.Columns)))

	for _, r := range records {
		if _, err := tx.Exec(stmt, r.Name, r.MarketCapUSD, r.MarketCapGBP, r.MarketCapEUR, r.MarketCapINR); err != nil {
			return fmt.Errorf("failed to insert row for %s: %v", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

// Run executes a read query and materializes the full result set with
// every value rendered as text.
func (s *Store) Run(query string) (*types.QueryResult, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to run query %q: %v", query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %v", err)
	}

	result := &types.QueryResult{
		Query:   query,
		Columns: columns,
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		rendered := make([]string, len(columns))
		for i, v := range values {
			rendered[i] = renderValue(v)
		}
		result.Rows = append(result.Rows, rendered)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %v", err)
	}

	return result, nil
}

func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if s.config.Driver == "postgres" {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
