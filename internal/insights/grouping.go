package insights

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// transactionsSince returns all transactions dated within the last `days`
// days relative to now (date >= now - days).
func transactionsSince(txs []model.Transaction, now time.Time, days int) []model.Transaction {
	cutoff := now.AddDate(0, 0, -days)
	var out []model.Transaction
	for _, t := range txs {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// transactionsBetween returns transactions in the half-open window
// [now - fromDays, now - toDays), used for prior-period comparisons.
func transactionsBetween(txs []model.Transaction, now time.Time, fromDays, toDays int) []model.Transaction {
	start := now.AddDate(0, 0, -fromDays)
	end := now.AddDate(0, 0, -toDays)
	var out []model.Transaction
	for _, t := range txs {
		if !t.Date.Before(start) && t.Date.Before(end) {
			out = append(out, t)
		}
	}
	return out
}

func expensesOf(txs []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.Type == model.TransactionExpense {
			out = append(out, t)
		}
	}
	return out
}

func incomesOf(txs []model.Transaction) []model.Transaction {
	var out []model.Transaction
	for _, t := range txs {
		if t.Type == model.TransactionIncome {
			out = append(out, t)
		}
	}
	return out
}

func amountsOf(txs []model.Transaction) []float64 {
	out := make([]float64, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.Amount)
	}
	return out
}

func totalOf(txs []model.Transaction) float64 {
	return sum(amountsOf(txs))
}

// groupByCategory partitions transactions by category, substituting the
// default category for uncategorized records.
func groupByCategory(txs []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txs {
		cat := t.CategoryOrDefault()
		groups[cat] = append(groups[cat], t)
	}
	return groups
}

// monthKey returns the calendar year-month key for a date, e.g. "2026-08".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// groupByMonth partitions transactions by calendar year-month.
func groupByMonth(txs []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txs {
		key := monthKey(t.Date)
		groups[key] = append(groups[key], t)
	}
	return groups
}

// groupByWeekday partitions transactions by day of week.
func groupByWeekday(txs []model.Transaction) map[time.Weekday][]model.Transaction {
	groups := make(map[time.Weekday][]model.Transaction)
	for _, t := range txs {
		wd := t.Date.Weekday()
		groups[wd] = append(groups[wd], t)
	}
	return groups
}

// similarityKey clusters likely-recurring charges: the case-folded name plus
// the amount snapped to the nearest $5 bucket, so minor drift (tips, taxes)
// across a subscription's charges still collapses into one group.
func similarityKey(name string, amount float64) string {
	bucket := int(math.Round(amount/5)) * 5
	return fmt.Sprintf("%s_%d", strings.ToLower(strings.TrimSpace(name)), bucket)
}

// groupBySimilarity partitions transactions by similarity key.
func groupBySimilarity(txs []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, t := range txs {
		key := similarityKey(t.Name, t.Amount)
		groups[key] = append(groups[key], t)
	}
	return groups
}
