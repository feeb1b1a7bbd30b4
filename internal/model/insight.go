package model

// Severity is the coarse urgency bucket of an insight, distinct from the
// fine-grained numeric priority used for ordering.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Category is the closed set of domain tags an insight can carry.
type Category string

const (
	CategoryCashFlow      Category = "cashflow"
	CategorySpending      Category = "spending"
	CategoryIncome        Category = "income"
	CategoryBudget        Category = "budget"
	CategoryPatterns      Category = "patterns"
	CategoryAnomaly       Category = "anomaly"
	CategorySubscriptions Category = "subscriptions"
	CategoryForecast      Category = "forecast"
	CategorySavings       Category = "savings"
	CategoryVendors       Category = "vendors"
	CategorySeasonal      Category = "seasonal"
	CategoryRecurring     Category = "recurring"
	CategoryDistribution  Category = "distribution"
	CategoryInvoices      Category = "invoices"
	CategoryTax           Category = "tax"
	CategoryGoals         Category = "goals"
	CategoryEmergency     Category = "emergency"
)

// Insight is one ranked, categorized finding derived from financial records.
// Insights are transient: rebuilt from scratch on every run and never mutated.
// The ID is deterministically constructed by the emitting rule so the same
// underlying condition reproduces the same ID across runs, which is what makes
// dismissal stick.
type Insight struct {
	ID         string      `json:"id"`
	Severity   Severity    `json:"severity"`
	Category   Category    `json:"category"`
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	Detail     string      `json:"detail,omitempty"`
	Priority   int         `json:"priority"`
	Actionable bool        `json:"actionable"`
	Data       InsightData `json:"data,omitempty"`
}
