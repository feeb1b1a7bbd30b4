package insights

import (
	"strings"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// topShare returns the group with the largest total and that total, with
// alphabetical tie-breaking so output is deterministic.
func topShare(groups map[string][]model.Transaction) (string, float64) {
	var topKey string
	var topTotal float64
	for key, txs := range groups {
		total := totalOf(txs)
		if total > topTotal || (total == topTotal && (topKey == "" || key < topKey)) {
			topKey = key
			topTotal = total
		}
	}
	return topKey, topTotal
}

// analyzeCategoryConcentration flags a single category absorbing an outsized
// share of total expenses.
func analyzeCategoryConcentration(in Input, now time.Time) []model.Insight {
	expenses := expensesOf(in.Transactions)
	if len(expenses) < 8 {
		return nil
	}
	total := totalOf(expenses)
	if total <= 0 {
		return nil
	}

	category, amount := topShare(groupByCategory(expenses))
	share := amount / total * 100
	if share <= 45 {
		return nil
	}

	cur := in.Settings.Currency()
	return []model.Insight{{
		ID:         "distribution-" + keySlug(category),
		Severity:   model.SeverityMedium,
		Category:   model.CategoryDistribution,
		Title:      "Spending Concentrated in One Category",
		Message:    category + " accounts for " + formatPercent(share) + " of your spending (" + formatMoney(cur, amount) + " of " + formatMoney(cur, total) + ").",
		Detail:     "Heavy concentration in one category makes your budget sensitive to price changes there.",
		Priority:   7,
		Actionable: true,
		Data: model.ConcentrationData{
			Category:     category,
			Amount:       amount,
			Total:        total,
			SharePercent: share,
		},
	}}
}

// analyzeTopVendor flags a single payee absorbing an outsized share of the
// last 90 days of expenses.
func analyzeTopVendor(in Input, now time.Time) []model.Insight {
	expenses := expensesOf(transactionsSince(in.Transactions, now, 90))
	if len(expenses) < 10 {
		return nil
	}
	total := totalOf(expenses)
	if total <= 0 {
		return nil
	}

	byVendor := make(map[string][]model.Transaction)
	displayName := make(map[string]string)
	for _, t := range expenses {
		key := strings.ToLower(strings.TrimSpace(t.Name))
		byVendor[key] = append(byVendor[key], t)
		if _, ok := displayName[key]; !ok {
			displayName[key] = t.Name
		}
	}

	vendorKey, amount := topShare(byVendor)
	share := amount / total * 100
	if share <= 20 {
		return nil
	}

	name := displayName[vendorKey]
	return []model.Insight{{
		ID:       "vendor-top-" + keySlug(vendorKey),
		Severity: model.SeverityLow,
		Category: model.CategoryVendors,
		Title:    "One Vendor Dominates Spending",
		Message:  name + " accounts for " + formatPercent(share) + " of your spending over the last 90 days.",
		Detail:   "For a vendor this significant it can be worth negotiating rates or reviewing alternatives.",
		Priority: 5,
		Data: model.VendorData{
			Vendor:       name,
			Amount:       amount,
			Total:        total,
			SharePercent: share,
		},
	}}
}

// analyzeWeekdayPattern flags spending clustering on a single day of the week
// over the last 60 days.
func analyzeWeekdayPattern(in Input, now time.Time) []model.Insight {
	expenses := expensesOf(transactionsSince(in.Transactions, now, 60))
	if len(expenses) < 20 {
		return nil
	}
	total := totalOf(expenses)
	if total <= 0 {
		return nil
	}

	var topDay time.Weekday
	var topTotal float64
	for wd, txs := range groupByWeekday(expenses) {
		dayTotal := totalOf(txs)
		if dayTotal > topTotal || (dayTotal == topTotal && wd < topDay) {
			topDay = wd
			topTotal = dayTotal
		}
	}
	share := topTotal / total * 100
	if share <= 25 {
		return nil
	}

	name := topDay.String()
	return []model.Insight{{
		ID:       "pattern-weekday-" + keySlug(name),
		Severity: model.SeverityLow,
		Category: model.CategoryPatterns,
		Title:    "Spending Clusters on " + name + "s",
		Message:  formatPercent(share) + " of your spending in the last 60 days happened on " + name + "s.",
		Priority: 4,
		Data: model.WeekdayData{
			Weekday:      name,
			Amount:       topTotal,
			Total:        total,
			SharePercent: share,
		},
	}}
}
