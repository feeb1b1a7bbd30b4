package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// UncategorizedCategory is used when a transaction carries no category.
const UncategorizedCategory = "Uncategorized"

// Transaction is a single normalized financial record. Inputs are owned by
// the caller and never mutated by the pipeline.
type Transaction struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Amount   float64         `json:"amount"`
	Type     TransactionType `json:"type"`
}

// CategoryOrDefault returns the transaction category, falling back to
// UncategorizedCategory when none is set.
func (t Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return UncategorizedCategory
	}
	return t.Category
}

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoid   InvoiceStatus = "void"
)

// Invoice is an issued invoice with an amount due.
type Invoice struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Status InvoiceStatus `json:"status"`
	Date   time.Time     `json:"date"`
	Due    time.Time     `json:"due,omitempty"`
}

// DueDate returns the due date, falling back to the issue date when the
// invoice carries no explicit due date.
func (i Invoice) DueDate() time.Time {
	if i.Due.IsZero() {
		return i.Date
	}
	return i.Due
}

// TaxPayment is a single payment made toward tax obligations.
type TaxPayment struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// UserSettings is the read-only configuration bag supplied with each run.
// Note: the tax-shortfall rule intentionally ignores TaxRate and uses a flat
// 20% estimate; the configured rate is only echoed into diagnostic payloads.
type UserSettings struct {
	BusinessProfile string  `json:"businessProfile,omitempty"`
	TaxRate         float64 `json:"taxRate,omitempty"`
	CurrencySymbol  string  `json:"currencySymbol,omitempty"`
}

// Currency returns the configured currency symbol, defaulting to "$".
func (s UserSettings) Currency() string {
	if s.CurrencySymbol == "" {
		return "$"
	}
	return s.CurrencySymbol
}
