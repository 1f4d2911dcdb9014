package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"sample-report/internal/series"
)

// go run ./etc/tools > series.csv
// Prints the default simulated series as CSV for checking the chart by hand
func main() {
	s, err := series.Generate(series.DefaultParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating series: %v\n", err)
		os.Exit(1)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"trade", "increment", "equity", "drawdown"})
	for i := range s.Equity {
		w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(s.Increments[i], 'f', 6, 64),
			strconv.FormatFloat(s.Equity[i], 'f', 6, 64),
			strconv.FormatFloat(s.Drawdown[i], 'f', 6, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		os.Exit(1)
	}

	sum := series.Summarize(s)
	fmt.Fprintf(os.Stderr, "trades=%d winRate=%.1f%% profitFactor=%.2f maxDrawdown=%.2f final=%.2f\n",
		sum.TotalTrades, sum.WinRate, sum.ProfitFactor, sum.MaxDrawdown, sum.FinalEquity)
}
