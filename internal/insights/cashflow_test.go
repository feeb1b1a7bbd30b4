package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/insights/internal/model"
)

func TestCashFlow(t *testing.T) {
	build := func(incomeAmt float64, expenses ...float64) Input {
		in := Input{Transactions: []model.Transaction{income(10, "Acme Consulting", incomeAmt)}}
		for i, amount := range expenses {
			in.Transactions = append(in.Transactions, expense(2+i, fmt.Sprintf("Vendor %d", i), "Misc", amount))
		}
		return in
	}

	t.Run("negative cash flow", func(t *testing.T) {
		out := analyzeCashFlow(build(100, 40, 40, 40, 30), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "cashflow-negative", out[0].ID)
		assert.Equal(t, 10, out[0].Priority)

		data := out[0].Data.(model.CashFlowData)
		assert.InDelta(t, -50, data.Net, 1e-9)
	})

	t.Run("thin margin", func(t *testing.T) {
		out := analyzeCashFlow(build(1000, 400, 300, 200, 50), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "cashflow-low-savings", out[0].ID)
		assert.Equal(t, model.SeverityMedium, out[0].Severity)

		data := out[0].Data.(model.CashFlowData)
		assert.InDelta(t, 5, data.SavingsRate, 1e-9)
	})

	t.Run("healthy margin", func(t *testing.T) {
		out := analyzeCashFlow(build(1000, 300, 250, 150, 50), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "cashflow-healthy", out[0].ID)
		assert.Equal(t, model.SeverityLow, out[0].Severity)
	})

	t.Run("middling rate is no opinion", func(t *testing.T) {
		// 15% savings rate sits between both thresholds.
		assert.Empty(t, analyzeCashFlow(build(1000, 400, 250, 150, 50), testNow))
	})

	t.Run("too few transactions", func(t *testing.T) {
		assert.Empty(t, analyzeCashFlow(build(100, 200), testNow))
	})
}

func TestSavingsRate(t *testing.T) {
	// monthSnapshot drops one income and one expense into the month at the
	// given offset from testNow.
	monthSnapshot := func(offset int, incomeAmt, expenseAmt float64) []model.Transaction {
		date := testNow.AddDate(0, -offset, -3)
		return []model.Transaction{
			{ID: fmt.Sprintf("in-%d", offset), Date: date, Name: "Acme Consulting", Amount: incomeAmt, Type: model.TransactionIncome},
			{ID: fmt.Sprintf("out-%d", offset), Date: date, Name: "Vendor", Amount: expenseAmt, Type: model.TransactionExpense},
		}
	}

	t.Run("persistently low rate flagged", func(t *testing.T) {
		var txs []model.Transaction
		txs = append(txs, monthSnapshot(2, 1000, 960)...)
		txs = append(txs, monthSnapshot(1, 1000, 940)...)
		txs = append(txs, monthSnapshot(0, 1000, 950)...)

		out := analyzeSavingsRate(Input{Transactions: txs}, testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "savings-low", out[0].ID)

		data := out[0].Data.(model.SavingsRateData)
		assert.Equal(t, 3, data.Months)
		assert.InDelta(t, 5, data.AverageRate, 1e-9)
	})

	t.Run("strong habit acknowledged", func(t *testing.T) {
		var txs []model.Transaction
		txs = append(txs, monthSnapshot(1, 1000, 700)...)
		txs = append(txs, monthSnapshot(0, 1000, 750)...)

		out := analyzeSavingsRate(Input{Transactions: txs}, testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "savings-good", out[0].ID)
		assert.Equal(t, model.SeverityLow, out[0].Severity)
	})

	t.Run("months without income skipped", func(t *testing.T) {
		var txs []model.Transaction
		txs = append(txs, monthSnapshot(2, 1000, 950)...)
		txs = append(txs, expense(34, "Vendor", "Misc", 500)) // May: spend, no income
		txs = append(txs, monthSnapshot(0, 1000, 940)...)

		out := analyzeSavingsRate(Input{Transactions: txs}, testNow)
		require.Len(t, out, 1)

		data := out[0].Data.(model.SavingsRateData)
		assert.Equal(t, 2, data.Months)
	})

	t.Run("single qualifying month is no opinion", func(t *testing.T) {
		assert.Empty(t, analyzeSavingsRate(Input{Transactions: monthSnapshot(0, 1000, 500)}, testNow))
	})

	t.Run("negative average rate is no opinion", func(t *testing.T) {
		var txs []model.Transaction
		txs = append(txs, monthSnapshot(1, 1000, 1200)...)
		txs = append(txs, monthSnapshot(0, 1000, 1100)...)
		assert.Empty(t, analyzeSavingsRate(Input{Transactions: txs}, testNow))
	})
}
