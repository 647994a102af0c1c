package models

// BankRecord is one row extracted from the market-capitalization table.
// Records keep the document order of the source table.
type BankRecord struct {
	Name         string
	MarketCapUSD float64
}

// EnrichedBankRecord is a BankRecord with the market cap converted into
// the three target currencies, each rounded to 2 decimal places.
type EnrichedBankRecord struct {
	BankRecord
	MarketCapGBP float64
	MarketCapEUR float64
	MarketCapINR float64
}

// RateTable maps a currency code (e.g. "GBP") to its multiplier
// relative to USD. Read-only for the lifetime of a run.
type RateTable map[string]float64

// RequiredCurrencies are the codes a rate source must provide.
var RequiredCurrencies = []string{"GBP", "EUR", "INR"}

// Columns is the output schema shared by the flat file and the
// relational table.
var Columns = []string{"Name", "MC_USD_Billion", "MC_GBP_Billion", "MC_EUR_Billion", "MC_INR_Billion"}
