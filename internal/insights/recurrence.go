package insights

import (
	"sort"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// recurringGroup is a cluster of expenses that looks like one monthly charge.
type recurringGroup struct {
	key         string
	name        string
	avgAmount   float64
	avgGap      float64
	lastSeen    time.Time
	occurrences int
}

// monthlyRecurringGroups clusters expenses by similarity key and keeps the
// groups that behave like a monthly subscription: at least three charges,
// every consecutive gap within 7 days of the average gap (a fixed tolerance
// band, not a statistical test), and an average gap between 25 and 35 days.
// Results are ordered by key so output is deterministic.
func monthlyRecurringGroups(expenses []model.Transaction) []recurringGroup {
	groups := groupBySimilarity(expenses)

	var out []recurringGroup
	for key, txs := range groups {
		if len(txs) < 3 {
			continue
		}
		sorted := make([]model.Transaction, len(txs))
		copy(sorted, txs)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})

		var gaps []float64
		for i := 1; i < len(sorted); i++ {
			gaps = append(gaps, sorted[i].Date.Sub(sorted[i-1].Date).Hours()/24)
		}
		avgGap := average(gaps)
		if avgGap < 25 || avgGap > 35 {
			continue
		}
		regular := true
		for _, g := range gaps {
			if g < avgGap-7 || g > avgGap+7 {
				regular = false
				break
			}
		}
		if !regular {
			continue
		}

		out = append(out, recurringGroup{
			key:         key,
			name:        sorted[0].Name,
			avgAmount:   average(amountsOf(sorted)),
			avgGap:      avgGap,
			lastSeen:    sorted[len(sorted)-1].Date,
			occurrences: len(sorted),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// analyzeMissingRecurring flags regular monthly charges that have gone quiet:
// the last occurrence is overdue by more than the average gap plus 5 days.
func analyzeMissingRecurring(in Input, now time.Time) []model.Insight {
	cur := in.Settings.Currency()
	var out []model.Insight
	for _, g := range monthlyRecurringGroups(expensesOf(in.Transactions)) {
		sinceDays := now.Sub(g.lastSeen).Hours() / 24
		overdue := sinceDays - g.avgGap
		if overdue <= 5 {
			continue
		}
		out = append(out, model.Insight{
			ID:         "recurring-missing-" + keySlug(g.key),
			Severity:   model.SeverityMedium,
			Category:   model.CategoryRecurring,
			Title:      "Missed Recurring Payment: " + g.name,
			Message:    g.name + " (" + formatMoney(cur, g.avgAmount) + ") usually recurs about every " + formatDays(g.avgGap) + ", but has not appeared for " + formatDays(sinceDays) + ".",
			Detail:     "If this charge was cancelled, ignore this. Otherwise check that the payment went through.",
			Priority:   6,
			Actionable: true,
			Data: model.RecurringData{
				Name:        g.name,
				Amount:      g.avgAmount,
				AverageGap:  g.avgGap,
				LastSeen:    g.lastSeen,
				OverdueDays: overdue,
				Occurrences: g.occurrences,
			},
		})
	}
	return out
}

// analyzeSubscriptions summarizes detected monthly subscriptions: either their
// combined cost is a large share of the last 30 days of spending, or there are
// simply a lot of them.
func analyzeSubscriptions(in Input, now time.Time) []model.Insight {
	groups := monthlyRecurringGroups(expensesOf(in.Transactions))
	if len(groups) == 0 {
		return nil
	}

	var monthlyCost float64
	subs := make([]model.DetectedSubscription, 0, len(groups))
	for _, g := range groups {
		monthlyCost += g.avgAmount
		subs = append(subs, model.DetectedSubscription{
			Name:        g.name,
			Amount:      g.avgAmount,
			AverageGap:  g.avgGap,
			Occurrences: g.occurrences,
			LastSeen:    g.lastSeen,
		})
	}

	cur := in.Settings.Currency()
	recent := totalOf(expensesOf(transactionsSince(in.Transactions, now, 30)))
	if recent > 0 {
		share := monthlyCost / recent * 100
		if share > 15 {
			return []model.Insight{{
				ID:         "subscriptions-high-cost",
				Severity:   model.SeverityMedium,
				Category:   model.CategorySubscriptions,
				Title:      "Subscriptions Are a Big Share of Spending",
				Message:    "Your " + plural(len(subs), "recurring subscription") + " cost about " + formatMoney(cur, monthlyCost) + " per month, " + formatPercent(share) + " of your last 30 days of spending.",
				Detail:     "Audit the list for services you no longer use. Cancelling one or two often recovers meaningful margin.",
				Priority:   7,
				Actionable: true,
				Data: model.SubscriptionData{
					Subscriptions: subs,
					MonthlyCost:   monthlyCost,
					RecentExpense: recent,
					SharePercent:  share,
				},
			}}
		}
	}

	if len(subs) >= 4 {
		return []model.Insight{{
			ID:       "subscriptions-count",
			Severity: model.SeverityLow,
			Category: model.CategorySubscriptions,
			Title:    "Multiple Active Subscriptions",
			Message:  "You have " + plural(len(subs), "recurring subscription") + " totaling about " + formatMoney(cur, monthlyCost) + " per month.",
			Priority: 5,
			Data: model.SubscriptionData{
				Subscriptions: subs,
				MonthlyCost:   monthlyCost,
			},
		}}
	}
	return nil
}
