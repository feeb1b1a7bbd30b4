package insights

import (
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// taxEstimateRate is the flat rate used to estimate tax owed on income.
// TODO(product): this deliberately ignores UserSettings.TaxRate to match the
// established behavior; confirm whether the configured rate should apply.
const taxEstimateRate = 0.20

// analyzeInvoices flags unpaid invoices, escalating when any are overdue by
// more than a day.
func analyzeInvoices(in Input, now time.Time) []model.Insight {
	var unpaid []model.Invoice
	for _, inv := range in.Invoices {
		if inv.Status == model.InvoiceUnpaid {
			unpaid = append(unpaid, inv)
		}
	}
	if len(unpaid) == 0 {
		return nil
	}

	overdueCutoff := now.AddDate(0, 0, -1)
	var unpaidTotal, overdueTotal float64
	var overdueCount int
	var oldest time.Time
	for _, inv := range unpaid {
		unpaidTotal += inv.Amount
		if inv.DueDate().Before(overdueCutoff) {
			overdueCount++
			overdueTotal += inv.Amount
			if oldest.IsZero() || inv.DueDate().Before(oldest) {
				oldest = inv.DueDate()
			}
		}
	}

	cur := in.Settings.Currency()
	data := model.InvoiceData{
		UnpaidCount:  len(unpaid),
		UnpaidTotal:  unpaidTotal,
		OverdueCount: overdueCount,
		OverdueTotal: overdueTotal,
	}
	if !oldest.IsZero() {
		data.OldestOverdue = oldest.Format("2006-01-02")
	}

	if overdueCount > 0 {
		return []model.Insight{{
			ID:         "invoices-overdue",
			Severity:   model.SeverityHigh,
			Category:   model.CategoryInvoices,
			Title:      "Overdue Invoices",
			Message:    "You have " + plural(overdueCount, "overdue invoice") + " totaling " + formatMoney(cur, overdueTotal) + ".",
			Detail:     "Following up on overdue invoices promptly keeps cash flow predictable. The oldest has been due since " + data.OldestOverdue + ".",
			Priority:   9,
			Actionable: true,
			Data:       data,
		}}
	}
	return []model.Insight{{
		ID:         "invoices-unpaid",
		Severity:   model.SeverityMedium,
		Category:   model.CategoryInvoices,
		Title:      "Unpaid Invoices",
		Message:    "You have " + plural(len(unpaid), "unpaid invoice") + " totaling " + formatMoney(cur, unpaidTotal) + ".",
		Priority:   6,
		Actionable: true,
		Data:       data,
	}}
}

// analyzeTaxFunding compares tax paid so far against a flat-rate estimate of
// tax owed on total income.
func analyzeTaxFunding(in Input, now time.Time) []model.Insight {
	income := totalOf(incomesOf(in.Transactions))
	if income <= 0 {
		return nil
	}

	estimated := income * taxEstimateRate
	var paid float64
	for _, p := range in.TaxPayments {
		paid += p.Amount
	}
	if paid >= 0.5*estimated {
		return nil
	}

	cur := in.Settings.Currency()
	return []model.Insight{{
		ID:         "tax-underfunded",
		Severity:   model.SeverityMedium,
		Category:   model.CategoryTax,
		Title:      "Tax Reserve May Be Short",
		Message:    "You have paid " + formatMoney(cur, paid) + " in tax against an estimated " + formatMoney(cur, estimated) + " owed on your income.",
		Detail:     "Setting aside roughly 20% of income as it arrives avoids a large bill at filing time.",
		Priority:   7,
		Actionable: true,
		Data: model.TaxData{
			Income:         income,
			EstimatedTax:   estimated,
			PaidTax:        paid,
			EstimateRate:   taxEstimateRate,
			ConfiguredRate: in.Settings.TaxRate,
		},
	}}
}
