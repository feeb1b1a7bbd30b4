package insights

import (
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// analyzeIncomeStability measures the coefficient of variation of monthly
// income totals over the last three calendar months. At least two months
// with income are required.
func analyzeIncomeStability(in Input, now time.Time) []model.Insight {
	if len(in.Transactions) < 10 {
		return nil
	}

	byMonth := groupByMonth(incomesOf(in.Transactions))
	var totals []float64
	for offset := 2; offset >= 0; offset-- {
		key := monthKey(now.AddDate(0, -offset, 0))
		monthTxs := byMonth[key]
		if len(monthTxs) == 0 {
			continue
		}
		if total := totalOf(monthTxs); total > 0 {
			totals = append(totals, total)
		}
	}
	if len(totals) < 2 {
		return nil
	}

	mean := average(totals)
	if mean <= 0 {
		return nil
	}
	sd := stdDev(totals)
	cv := sd / mean * 100

	data := model.IncomeStabilityData{MonthlyTotals: totals, Mean: mean, StdDev: sd, CV: cv}

	switch {
	case cv > 30:
		return []model.Insight{{
			ID:         "income-volatile",
			Severity:   model.SeverityMedium,
			Category:   model.CategoryIncome,
			Title:      "Income Is Volatile",
			Message:    "Your monthly income varied by " + formatPercent(cv) + " around its average over recent months.",
			Detail:     "With uneven income, budgeting off your lowest recent month is safer than budgeting off the average.",
			Priority:   7,
			Actionable: true,
			Data:       data,
		}}
	case cv < 10:
		return []model.Insight{{
			ID:       "income-stable",
			Severity: model.SeverityLow,
			Category: model.CategoryIncome,
			Title:    "Income Is Stable",
			Message:  "Your monthly income has been steady, varying only " + formatPercent(cv) + " around its average.",
			Priority: 5,
			Data:     data,
		}}
	}
	return nil
}
