package insights

import (
	"fmt"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// analyzeAnomalies flags expenses from the last 7 days whose amount sits more
// than two standard deviations above the 60-day mean. One insight is emitted
// per anomalous transaction, keyed to the transaction id so reruns over
// unchanged data reproduce identical ids.
func analyzeAnomalies(in Input, now time.Time) []model.Insight {
	recent := expensesOf(transactionsSince(in.Transactions, now, 60))
	if len(recent) < 10 {
		return nil
	}

	amounts := amountsOf(recent)
	mean := average(amounts)
	sd := stdDev(amounts)
	if sd <= 0 {
		return nil
	}

	window := now.AddDate(0, 0, -7)
	cur := in.Settings.Currency()
	var out []model.Insight
	for _, t := range recent {
		if t.Date.Before(window) {
			continue
		}
		z := (t.Amount - mean) / sd
		if z <= 2 {
			continue
		}
		out = append(out, model.Insight{
			ID:         "anomaly-" + t.ID,
			Severity:   model.SeverityMedium,
			Category:   model.CategoryAnomaly,
			Title:      "Unusual Expense: " + t.Name,
			Message:    fmt.Sprintf("%s charged %s, %.1f standard deviations above your recent average of %s.", t.Name, formatMoney(cur, t.Amount), z, formatMoney(cur, mean)),
			Detail:     "Verify this charge is expected. If it is a one-off, no action is needed.",
			Priority:   6,
			Actionable: true,
			Data: model.AnomalyData{
				TransactionID: t.ID,
				Name:          t.Name,
				Amount:        t.Amount,
				Mean:          mean,
				StdDev:        sd,
				ZScore:        z,
			},
		})
	}
	return out
}
