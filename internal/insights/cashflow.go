package insights

import (
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// analyzeCashFlow compares total income against total expenses and flags
// negative cash flow, a thin savings margin, or a healthy one.
func analyzeCashFlow(in Input, now time.Time) []model.Insight {
	if len(in.Transactions) < 5 {
		return nil
	}

	income := totalOf(incomesOf(in.Transactions))
	expenses := totalOf(expensesOf(in.Transactions))
	net := income - expenses
	cur := in.Settings.Currency()

	data := model.CashFlowData{Income: income, Expenses: expenses, Net: net}
	if income > 0 {
		data.SavingsRate = net / income * 100
	}

	switch {
	case net < 0:
		return []model.Insight{{
			ID:         "cashflow-negative",
			Severity:   model.SeverityHigh,
			Category:   model.CategoryCashFlow,
			Title:      "Negative Cash Flow",
			Message:    "You spent more than you earned: net cash flow is " + formatMoney(cur, net) + ".",
			Detail:     "Review your largest expense categories and consider deferring non-essential spending until income recovers.",
			Priority:   10,
			Actionable: true,
			Data:       data,
		}}
	case income > 0 && data.SavingsRate < 10:
		return []model.Insight{{
			ID:         "cashflow-low-savings",
			Severity:   model.SeverityMedium,
			Category:   model.CategoryCashFlow,
			Title:      "Low Savings Rate",
			Message:    "You are keeping only " + formatPercent(data.SavingsRate) + " of your income after expenses.",
			Detail:     "A savings rate below 10% leaves little buffer for slow months. Look for one recurring expense to cut.",
			Priority:   8,
			Actionable: true,
			Data:       data,
		}}
	case income > 0 && data.SavingsRate >= 20:
		return []model.Insight{{
			ID:       "cashflow-healthy",
			Severity: model.SeverityLow,
			Category: model.CategoryCashFlow,
			Title:    "Excellent Savings Rate",
			Message:  "You are keeping " + formatPercent(data.SavingsRate) + " of your income after expenses. Keep it up.",
			Priority: 6,
			Data:     data,
		}}
	}
	return nil
}

// analyzeSavingsRate averages the savings rate over up to the last three
// calendar months. Months with no income are skipped; at least two months
// with income are required before the rule has an opinion.
func analyzeSavingsRate(in Input, now time.Time) []model.Insight {
	byMonth := groupByMonth(in.Transactions)

	var rates []float64
	for offset := 2; offset >= 0; offset-- {
		key := monthKey(now.AddDate(0, -offset, 0))
		monthTxs := byMonth[key]
		if len(monthTxs) == 0 {
			continue
		}
		income := totalOf(incomesOf(monthTxs))
		if income <= 0 {
			continue
		}
		expenses := totalOf(expensesOf(monthTxs))
		rates = append(rates, (income-expenses)/income*100)
	}
	if len(rates) < 2 {
		return nil
	}

	avg := average(rates)
	data := model.SavingsRateData{MonthlyRates: rates, AverageRate: avg, Months: len(rates)}

	switch {
	case avg > 0 && avg < 10:
		return []model.Insight{{
			ID:         "savings-low",
			Severity:   model.SeverityMedium,
			Category:   model.CategorySavings,
			Title:      "Savings Rate Below Target",
			Message:    "Your average savings rate over the last " + plural(len(rates), "month") + " is " + formatPercent(avg) + ".",
			Detail:     "Aim for at least 10% of income saved each month. Automating a transfer on payday makes this easier to hold.",
			Priority:   7,
			Actionable: true,
			Data:       data,
		}}
	case avg >= 20:
		return []model.Insight{{
			ID:       "savings-good",
			Severity: model.SeverityLow,
			Category: model.CategorySavings,
			Title:    "Strong Saving Habit",
			Message:  "You averaged a " + formatPercent(avg) + " savings rate over the last " + plural(len(rates), "month") + ".",
			Priority: 5,
			Data:     data,
		}}
	}
	return nil
}
