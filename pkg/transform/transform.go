package transform

import (
	"math"

	"github.com/xhad/banks/internal/models"
)

// Convert derives the GBP, EUR and INR market caps for every record,
// rounded to 2 decimal places. Pure: no I/O, deterministic, and the
// output keeps the cardinality and ordering of the input.
func Convert(records []models.BankRecord, table models.RateTable) []models.EnrichedBankRecord {
	gbp := table["GBP"]
	eur := table["EUR"]
	inr := table["INR"]

	enriched := make([]models.EnrichedBankRecord, 0, len(records))
	for _, r := range records {
		enriched = append(enriched, models.EnrichedBankRecord{
			BankRecord:   r,
			MarketCapGBP: round2(r.MarketCapUSD * gbp),
			MarketCapEUR: round2(r.MarketCapUSD * eur),
			MarketCapINR: round2(r.MarketCapUSD * inr),
		})
	}

	return enriched
}

// round2 rounds half away from zero, matching math.Round semantics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
