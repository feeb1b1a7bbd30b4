// Package insights generates ranked, human-readable findings from normalized
// financial records. Generation is a pure function of its input and the
// injected clock: identical inputs always produce an identical ordered list.
package insights

import (
	"sort"
	"time"

	"github.com/ledgerlens/insights/internal/model"
)

// Input is the snapshot of records a single run analyzes. The generator
// never mutates it.
type Input struct {
	Transactions []model.Transaction `json:"transactions"`
	Invoices     []model.Invoice     `json:"invoices"`
	TaxPayments  []model.TaxPayment  `json:"taxPayments"`
	Settings     model.UserSettings  `json:"settings"`
}

// rule is one independent analysis module. Rules share no state, see the same
// input snapshot, and return no output when their minimum-sample guard is
// unmet; insufficient data is "no opinion", never an error.
type rule func(in Input, now time.Time) []model.Insight

// rules is the fixed execution order. It feeds the stable sort's tie-break,
// so the ordering here is part of the tested contract.
var rules = []rule{
	analyzeCashFlow,
	analyzeSpendingTrend,
	analyzeIncomeStability,
	analyzeInvoices,
	analyzeCategoryConcentration,
	analyzeTaxFunding,
	analyzeAnomalies,
	analyzeMissingRecurring,
	analyzeWeekdayPattern,
	analyzeSavingsRate,
	analyzeTopVendor,
	analyzeSubscriptions,
	analyzeSpendingForecast,
	analyzeSeasonalPattern,
}

// Generator runs the analysis rules against an input snapshot.
// The clock is injected so tests can pin "now"; no rule calls time.Now.
type Generator struct {
	clock func() time.Time
}

// New creates a generator using the wall clock.
func New() *Generator {
	return NewAt(time.Now)
}

// NewAt creates a generator with an injected clock.
func NewAt(clock func() time.Time) *Generator {
	return &Generator{clock: clock}
}

// Generate runs every rule against the same input snapshot, concatenates
// their output in rule order, sorts by priority descending (stable, so
// emission order breaks ties), and drops later insights that share a
// (category, title) pair with an earlier one.
func (g *Generator) Generate(in Input) []model.Insight {
	now := g.clock()

	var all []model.Insight
	for _, r := range rules {
		all = append(all, r(in, now)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority > all[j].Priority
	})

	type dedupKey struct {
		category model.Category
		title    string
	}
	seen := make(map[dedupKey]bool, len(all))
	out := all[:0]
	for _, ins := range all {
		key := dedupKey{ins.Category, ins.Title}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ins)
	}
	return out
}

// ActiveCount returns how many generated insights are not in the supplied
// dismissed-id set. A convenience view over Generate, not additional logic.
func (g *Generator) ActiveCount(in Input, dismissed map[string]bool) int {
	count := 0
	for _, ins := range g.Generate(in) {
		if !dismissed[ins.ID] {
			count++
		}
	}
	return count
}
