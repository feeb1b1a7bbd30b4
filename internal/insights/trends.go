package insights

import (
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// analyzeSpendingTrend compares expense totals for the last 30 days against
// the 30 days before that.
func analyzeSpendingTrend(in Input, now time.Time) []model.Insight {
	if len(in.Transactions) < 10 {
		return nil
	}

	expenses := expensesOf(in.Transactions)
	current := totalOf(transactionsSince(expenses, now, 30))
	previous := totalOf(transactionsBetween(expenses, now, 60, 30))
	if previous <= 0 {
		return nil
	}

	change := (current - previous) / previous * 100
	data := model.TrendData{Current: current, Previous: previous, ChangePercent: change}

	switch {
	case change > 25:
		return []model.Insight{{
			ID:         "spending-trend-up",
			Severity:   model.SeverityMedium,
			Category:   model.CategorySpending,
			Title:      "Spending Is Trending Up",
			Message:    "Your spending over the last 30 days is up " + formatPercent(change) + " versus the previous 30 days.",
			Detail:     "Compare the two periods by category to see what drove the increase.",
			Priority:   8,
			Actionable: true,
			Data:       data,
		}}
	case change < -20:
		return []model.Insight{{
			ID:       "spending-trend-down",
			Severity: model.SeverityLow,
			Category: model.CategorySpending,
			Title:    "Spending Is Trending Down",
			Message:  "Your spending over the last 30 days is down " + formatPercent(-change) + " versus the previous 30 days.",
			Priority: 6,
			Data:     data,
		}}
	}
	return nil
}

// analyzeSpendingForecast projects the current month's expense total by
// prorating month-to-date spend across the full month, then compares it
// against a baseline built from up to the last three full months (their mean
// plus one step of a linear trend).
func analyzeSpendingForecast(in Input, now time.Time) []model.Insight {
	expenses := expensesOf(in.Transactions)
	byMonth := groupByMonth(expenses)

	var totals []float64
	for offset := 3; offset >= 1; offset-- {
		key := monthKey(now.AddDate(0, -offset, 0))
		monthTxs := byMonth[key]
		if len(monthTxs) == 0 {
			continue
		}
		totals = append(totals, totalOf(monthTxs))
	}
	if len(totals) < 2 {
		return nil
	}

	monthToDate := totalOf(byMonth[monthKey(now)])
	elapsed := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, -1).Day()
	projected := monthToDate / float64(elapsed) * float64(daysInMonth)

	predicted := average(totals) + linearSlope(totals)
	if predicted <= 0 {
		return nil
	}

	data := model.ForecastData{
		MonthToDate:   monthToDate,
		ElapsedDays:   elapsed,
		DaysInMonth:   daysInMonth,
		Projected:     projected,
		Predicted:     predicted,
		MonthlyTotals: totals,
	}
	cur := in.Settings.Currency()

	switch {
	case projected > 1.15*predicted:
		return []model.Insight{{
			ID:         "forecast-overspend",
			Severity:   model.SeverityMedium,
			Category:   model.CategoryForecast,
			Title:      "On Pace to Overspend This Month",
			Message:    "At the current pace you will spend about " + formatMoney(cur, projected) + " this month, versus a typical " + formatMoney(cur, predicted) + ".",
			Detail:     "Slowing discretionary spending in the back half of the month would bring you back to trend.",
			Priority:   7,
			Actionable: true,
			Data:       data,
		}}
	case projected < 0.85*predicted:
		return []model.Insight{{
			ID:       "forecast-under",
			Severity: model.SeverityLow,
			Category: model.CategoryForecast,
			Title:    "Spending Below Your Usual Pace",
			Message:  "You are on track to spend about " + formatMoney(cur, projected) + " this month, under your typical " + formatMoney(cur, predicted) + ".",
			Priority: 5,
			Data:     data,
		}}
	}
	return nil
}

// analyzeSeasonalPattern compares the current calendar month's historical
// average spend against the average of all other months of the year.
func analyzeSeasonalPattern(in Input, now time.Time) []model.Insight {
	expenses := expensesOf(in.Transactions)
	if len(expenses) < 30 {
		return nil
	}

	// Average monthly spend per month-of-year, across every year-month seen.
	byMonth := groupByMonth(expenses)
	monthTotals := make(map[time.Month][]float64)
	for key, txs := range byMonth {
		parsed, err := time.Parse("2006-01", key)
		if err != nil {
			continue
		}
		monthTotals[parsed.Month()] = append(monthTotals[parsed.Month()], totalOf(txs))
	}

	currentMonth := now.Month()
	currentAvgs, ok := monthTotals[currentMonth]
	if !ok {
		return nil
	}
	currentAvg := average(currentAvgs)

	var otherAvgs []float64
	for m, totals := range monthTotals {
		if m == currentMonth {
			continue
		}
		otherAvgs = append(otherAvgs, average(totals))
	}
	otherAvg := average(otherAvgs)
	if otherAvg <= 0 {
		return nil
	}

	ratio := currentAvg / otherAvg
	if ratio <= 1.3 {
		return nil
	}

	name := currentMonth.String()
	return []model.Insight{{
		ID:       "seasonal-" + keySlug(name),
		Severity: model.SeverityLow,
		Category: model.CategorySeasonal,
		Title:    "Seasonal Spending Spike",
		Message:  name + " historically runs " + formatPercent((ratio-1)*100) + " above your average month.",
		Detail:   "If this month is usually expensive for you, setting aside extra in the preceding months smooths it out.",
		Priority: 4,
		Data: model.SeasonalData{
			Month:        name,
			MonthAverage: currentAvg,
			OtherAverage: otherAvg,
			Ratio:        ratio,
		},
	}}
}
