package insights

import (
	"fmt"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// testNow pins the clock for every insight test: Sunday 2025-06-15 12:00 UTC.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

var txSeq int

func expense(daysAgo int, name, category string, amount float64) model.Transaction {
	return record(daysAgo, name, category, amount, model.TransactionExpense)
}

func income(daysAgo int, name string, amount float64) model.Transaction {
	return record(daysAgo, name, "", amount, model.TransactionIncome)
}

func record(daysAgo int, name, category string, amount float64, typ model.TransactionType) model.Transaction {
	txSeq++
	return model.Transaction{
		ID:       fmt.Sprintf("tx-%04d", txSeq),
		Date:     testNow.AddDate(0, 0, -daysAgo),
		Name:     name,
		Category: category,
		Amount:   amount,
		Type:     typ,
	}
}

func findInsight(insights []model.Insight, id string) (model.Insight, bool) {
	for _, ins := range insights {
		if ins.ID == id {
			return ins, true
		}
	}
	return model.Insight{}, false
}

// richInput builds a snapshot that trips several rules at once: recurring
// subscriptions, an expense outlier, overdue invoices, and underfunded tax.
func richInput() Input {
	in := Input{Settings: model.UserSettings{CurrencySymbol: "$"}}

	for m := 0; m < 4; m++ {
		in.Transactions = append(in.Transactions, model.Transaction{
			ID:     fmt.Sprintf("salary-%d", m),
			Date:   testNow.AddDate(0, -m, 0),
			Name:   "Acme Consulting",
			Amount: 6000,
			Type:   model.TransactionIncome,
		})
	}
	for m := 0; m < 4; m++ {
		date := testNow.AddDate(0, -m, -2)
		in.Transactions = append(in.Transactions,
			model.Transaction{ID: fmt.Sprintf("rent-%d", m), Date: date, Name: "Sunrise Property", Category: "Housing", Amount: 1850, Type: model.TransactionExpense},
			model.Transaction{ID: fmt.Sprintf("netflix-%d", m), Date: date.AddDate(0, 0, 1), Name: "Netflix", Category: "Entertainment", Amount: 15.49, Type: model.TransactionExpense},
		)
	}
	for d := 1; d <= 57; d += 4 {
		in.Transactions = append(in.Transactions,
			model.Transaction{ID: fmt.Sprintf("grocer-%d", d), Date: testNow.AddDate(0, 0, -d), Name: "Corner Grocer", Category: "Groceries", Amount: 62.50, Type: model.TransactionExpense},
			model.Transaction{ID: fmt.Sprintf("transit-%d", d), Date: testNow.AddDate(0, 0, -d), Name: "Metro Transit", Category: "Transport", Amount: 12, Type: model.TransactionExpense},
		)
	}
	in.Transactions = append(in.Transactions, model.Transaction{
		ID: "outlier-1", Date: testNow.AddDate(0, 0, -3), Name: "Apex Electronics",
		Category: "Shopping", Amount: 1299, Type: model.TransactionExpense,
	})

	in.Invoices = append(in.Invoices,
		model.Invoice{ID: "inv-paid", Amount: 2400, Status: model.InvoicePaid, Date: testNow.AddDate(0, -1, 0), Due: testNow.AddDate(0, 0, -20)},
		model.Invoice{ID: "inv-open", Amount: 1800, Status: model.InvoiceUnpaid, Date: testNow.AddDate(0, 0, -10), Due: testNow.AddDate(0, 0, 14)},
		model.Invoice{ID: "inv-late", Amount: 950, Status: model.InvoiceUnpaid, Date: testNow.AddDate(0, 0, -30), Due: testNow.AddDate(0, 0, -6)},
	)

	in.TaxPayments = append(in.TaxPayments, model.TaxPayment{
		ID: "tax-1", Date: testNow.AddDate(0, -2, 0), Amount: 400,
	})

	return in
}
