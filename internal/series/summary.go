package series

// Summary holds the performance metrics logged with the generated chart.
type Summary struct {
	TotalTrades     int
	WinningTrades   int
	LosingTrades    int
	BreakEvenTrades int
	WinRate         float64 // percent of decided trades
	ProfitFactor    float64
	AverageWin      float64
	AverageLoss     float64 // positive amount
	Expectancy      float64
	MaxDrawdown     float64
	FinalEquity     float64
	PeakEquity      float64
}

// Summarize treats every increment as one closed trade.
func Summarize(s *Series) Summary {
	var sum Summary
	if s == nil {
		return sum
	}

	var totalProfit, totalLoss float64
	for _, pl := range s.Increments {
		switch {
		case pl > 0:
			sum.WinningTrades++
			totalProfit += pl
		case pl < 0:
			sum.LosingTrades++
			totalLoss += -pl
		}
	}
	sum.TotalTrades = len(s.Increments)
	sum.BreakEvenTrades = sum.TotalTrades - sum.WinningTrades - sum.LosingTrades

	if decided := sum.WinningTrades + sum.LosingTrades; decided > 0 {
		sum.WinRate = float64(sum.WinningTrades) / float64(decided) * 100
	}

	// a loss-free run divides by 1
	lossDiv := totalLoss
	if lossDiv == 0 {
		lossDiv = 1
	}
	sum.ProfitFactor = totalProfit / lossDiv

	if sum.WinningTrades > 0 {
		sum.AverageWin = totalProfit / float64(sum.WinningTrades)
	}
	if sum.LosingTrades > 0 {
		sum.AverageLoss = totalLoss / float64(sum.LosingTrades)
	}
	p := sum.WinRate / 100
	sum.Expectancy = p*sum.AverageWin - (1-p)*sum.AverageLoss

	for _, dd := range s.Drawdown {
		if dd > sum.MaxDrawdown {
			sum.MaxDrawdown = dd
		}
	}
	if n := len(s.Equity); n > 0 {
		sum.FinalEquity = s.Equity[n-1]
		sum.PeakEquity = s.Equity[0]
		for _, v := range s.Equity[1:] {
			if v > sum.PeakEquity {
				sum.PeakEquity = v
			}
		}
	}
	return sum
}
