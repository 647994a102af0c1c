package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xhad/banks/internal/models"
)

// ConfigError reports an unusable exchange-rate source: missing file,
// missing required columns, or a missing required currency. Raised
// before any pipeline output is written.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("exchange rate source %s: %s", e.Path, e.Reason)
}

// requiredColumns must both be present in the header; order and extra
// columns are not constrained.
var requiredColumns = []string{"Currency", "Rate"}

// Load reads a delimited rate file into a RateTable. The file must
// carry Currency and Rate columns and a row for each required
// currency (GBP, EUR, INR).
func Load(path string) (models.RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("open: %v", err)}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("read header: %v", err)}
	}

	currencyCol, rateCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Currency":
			currencyCol = i
		case "Rate":
			rateCol = i
		}
	}
	if currencyCol < 0 || rateCol < 0 {
		return nil, &ConfigError{
			Path:   path,
			Reason: fmt.Sprintf("header must contain %s columns", strings.Join(requiredColumns, " and ")),
		}
	}

	table := make(models.RateTable)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("read row: %v", err)}
		}
		if len(record) <= currencyCol || len(record) <= rateCol {
			continue
		}

		code := strings.TrimSpace(record[currencyCol])
		if code == "" {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(record[rateCol]), 64)
		if err != nil {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("invalid rate for %s: %v", code, err)}
		}

		table[code] = value
	}

	for _, code := range models.RequiredCurrencies {
		if _, ok := table[code]; !ok {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("missing %s rate", code)}
		}
	}

	return table, nil
}
