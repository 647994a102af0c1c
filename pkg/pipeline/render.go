package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/xhad/banks/internal/models"
	"github.com/xhad/banks/internal/types"
)

func renderRecords(out io.Writer, records []models.BankRecord) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(models.Columns[:2], "\t"))
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, formatFloat(r.MarketCapUSD))
	}
	_ = w.Flush()
	fmt.Fprintln(out)
}

func renderEnriched(out io.Writer, records []models.EnrichedBankRecord) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(models.Columns, "\t"))
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			formatFloat(r.MarketCapUSD),
			formatFloat(r.MarketCapGBP),
			formatFloat(r.MarketCapEUR),
			formatFloat(r.MarketCapINR))
	}
	_ = w.Flush()
	fmt.Fprintln(out)
}

func renderResult(out io.Writer, result *types.QueryResult) {
	fmt.Fprintln(out, "Query:")
	fmt.Fprintln(out, result.Query)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
	fmt.Fprintln(out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
