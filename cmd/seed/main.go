// Command seed emits a demo record snapshot as JSON, shaped to trip most of
// the analysis rules: recurring subscriptions, a spending outlier, overdue
// invoices, and a thin tax reserve. Useful for exercising the API locally:
//
//	go run ./cmd/seed | curl -s -X POST localhost:8111/v1/insights -d @-
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerlens/insights/internal/insights"
	"github.com/ledgerlens/insights/internal/model"
)

func main() {
	out := flag.String("out", "", "write the snapshot to a file instead of stdout")
	flag.Parse()

	now := time.Now()
	in := insights.Input{Settings: model.UserSettings{CurrencySymbol: "$", TaxRate: 0.30}}

	// Four months of salary.
	for m := 0; m < 4; m++ {
		in.Transactions = append(in.Transactions, tx(
			now.AddDate(0, -m, 0), "Acme Consulting", "Consulting", 6200, model.TransactionIncome))
	}

	// Monthly recurring charges: rent plus two subscriptions.
	for m := 0; m < 4; m++ {
		date := now.AddDate(0, -m, -2)
		in.Transactions = append(in.Transactions,
			tx(date, "Sunrise Property Mgmt", "Housing", 1850, model.TransactionExpense),
			tx(date.AddDate(0, 0, 1), "Netflix", "Entertainment", 15.49, model.TransactionExpense),
			tx(date.AddDate(0, 0, 3), "Adobe Creative Cloud", "Software", 54.99, model.TransactionExpense),
		)
	}

	// A spread of everyday spending across the last two months.
	for d := 1; d <= 60; d += 4 {
		date := now.AddDate(0, 0, -d)
		in.Transactions = append(in.Transactions,
			tx(date, "Corner Grocer", "Groceries", 62.50, model.TransactionExpense),
			tx(date, "Metro Transit", "Transport", 12.00, model.TransactionExpense),
		)
	}

	// An outlier inside the anomaly window.
	in.Transactions = append(in.Transactions, tx(
		now.AddDate(0, 0, -3), "Apex Electronics", "Shopping", 1299, model.TransactionExpense))

	// One paid, one unpaid, one overdue invoice.
	in.Invoices = append(in.Invoices,
		model.Invoice{ID: uuid.New().String(), Amount: 2400, Status: model.InvoicePaid,
			Date: now.AddDate(0, -1, 0), Due: now.AddDate(0, 0, -20)},
		model.Invoice{ID: uuid.New().String(), Amount: 1800, Status: model.InvoiceUnpaid,
			Date: now.AddDate(0, 0, -10), Due: now.AddDate(0, 0, 14)},
		model.Invoice{ID: uuid.New().String(), Amount: 950, Status: model.InvoiceUnpaid,
			Date: now.AddDate(0, 0, -30), Due: now.AddDate(0, 0, -6)},
	)

	// A single small tax payment against four months of income.
	in.TaxPayments = append(in.TaxPayments, model.TaxPayment{
		ID: uuid.New().String(), Date: now.AddDate(0, -2, 0), Amount: 800,
	})

	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal snapshot: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func tx(date time.Time, name, category string, amount float64, typ model.TransactionType) model.Transaction {
	return model.Transaction{
		ID:       uuid.New().String(),
		Date:     date,
		Name:     name,
		Category: category,
		Amount:   amount,
		Type:     typ,
	}
}
