package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xhad/banks/internal/models"
)

// WriteCSV writes the enriched records to path as a comma-delimited
// file with a header row and no index column, overwriting any
// existing file.
func WriteCSV(path string, records []models.EnrichedBankRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	if err := w.Write(models.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Name,
			formatFloat(r.MarketCapUSD),
			formatFloat(r.MarketCapGBP),
			formatFloat(r.MarketCapEUR),
			formatFloat(r.MarketCapINR),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
