package model

import "time"

// InsightData is the diagnostic payload attached to an insight: the numbers
// that produced the conclusion, for audit and debugging. Each rule declares
// its own payload type rather than stuffing an untyped bag.
type InsightData interface {
	insightData()
}

// CashFlowData backs cash-flow and savings-rate findings.
type CashFlowData struct {
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Net         float64 `json:"net"`
	SavingsRate float64 `json:"savingsRate,omitempty"`
}

// TrendData backs period-over-period spending comparisons.
type TrendData struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	ChangePercent float64 `json:"changePercent"`
}

// IncomeStabilityData backs income volatility findings.
type IncomeStabilityData struct {
	MonthlyTotals []float64 `json:"monthlyTotals"`
	Mean          float64   `json:"mean"`
	StdDev        float64   `json:"stdDev"`
	CV            float64   `json:"coefficientOfVariation"`
}

// InvoiceData backs unpaid/overdue invoice findings.
type InvoiceData struct {
	UnpaidCount   int     `json:"unpaidCount"`
	UnpaidTotal   float64 `json:"unpaidTotal"`
	OverdueCount  int     `json:"overdueCount"`
	OverdueTotal  float64 `json:"overdueTotal"`
	OldestOverdue string  `json:"oldestOverdue,omitempty"`
}

// ConcentrationData backs category-concentration findings.
type ConcentrationData struct {
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Total        float64 `json:"total"`
	SharePercent float64 `json:"sharePercent"`
}

// TaxData backs tax-underfunding findings. ConfiguredRate echoes the user
// setting even though the estimate uses the flat rate.
type TaxData struct {
	Income         float64 `json:"income"`
	EstimatedTax   float64 `json:"estimatedTax"`
	PaidTax        float64 `json:"paidTax"`
	EstimateRate   float64 `json:"estimateRate"`
	ConfiguredRate float64 `json:"configuredRate,omitempty"`
}

// AnomalyData backs one-per-transaction outlier findings.
type AnomalyData struct {
	TransactionID string  `json:"transactionId"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	Mean          float64 `json:"mean"`
	StdDev        float64 `json:"stdDev"`
	ZScore        float64 `json:"zScore"`
}

// RecurringData backs missing-recurring-charge findings.
type RecurringData struct {
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	AverageGap  float64   `json:"averageGapDays"`
	LastSeen    time.Time `json:"lastSeen"`
	OverdueDays float64   `json:"overdueDays"`
	Occurrences int       `json:"occurrences"`
}

// WeekdayData backs day-of-week spending pattern findings.
type WeekdayData struct {
	Weekday      string  `json:"weekday"`
	Amount       float64 `json:"amount"`
	Total        float64 `json:"total"`
	SharePercent float64 `json:"sharePercent"`
}

// SavingsRateData backs multi-month savings-rate findings.
type SavingsRateData struct {
	MonthlyRates []float64 `json:"monthlyRates"`
	AverageRate  float64   `json:"averageRate"`
	Months       int       `json:"months"`
}

// VendorData backs top-vendor concentration findings.
type VendorData struct {
	Vendor       string  `json:"vendor"`
	Amount       float64 `json:"amount"`
	Total        float64 `json:"total"`
	SharePercent float64 `json:"sharePercent"`
}

// SubscriptionData backs subscription-spend findings.
type SubscriptionData struct {
	Subscriptions []DetectedSubscription `json:"subscriptions"`
	MonthlyCost   float64                `json:"monthlyCost"`
	RecentExpense float64                `json:"recentExpense,omitempty"`
	SharePercent  float64                `json:"sharePercent,omitempty"`
}

// DetectedSubscription is one likely-recurring monthly charge.
type DetectedSubscription struct {
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	AverageGap  float64   `json:"averageGapDays"`
	Occurrences int       `json:"occurrences"`
	LastSeen    time.Time `json:"lastSeen"`
}

// ForecastData backs month-end spending projections.
type ForecastData struct {
	MonthToDate   float64   `json:"monthToDate"`
	ElapsedDays   int       `json:"elapsedDays"`
	DaysInMonth   int       `json:"daysInMonth"`
	Projected     float64   `json:"projected"`
	Predicted     float64   `json:"predicted"`
	MonthlyTotals []float64 `json:"monthlyTotals"`
}

// SeasonalData backs month-of-year spending pattern findings.
type SeasonalData struct {
	Month        string  `json:"month"`
	MonthAverage float64 `json:"monthAverage"`
	OtherAverage float64 `json:"otherAverage"`
	Ratio        float64 `json:"ratio"`
}

func (CashFlowData) insightData()        {}
func (TrendData) insightData()           {}
func (IncomeStabilityData) insightData() {}
func (InvoiceData) insightData()         {}
func (ConcentrationData) insightData()   {}
func (TaxData) insightData()             {}
func (AnomalyData) insightData()         {}
func (RecurringData) insightData()       {}
func (WeekdayData) insightData()         {}
func (SavingsRateData) insightData()     {}
func (VendorData) insightData()          {}
func (SubscriptionData) insightData()    {}
func (ForecastData) insightData()        {}
func (SeasonalData) insightData()        {}
