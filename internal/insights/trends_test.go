package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/insights/internal/model"
)

func trendInput(recentEach, priorEach float64) Input {
	var txs []model.Transaction
	for i := 0; i < 5; i++ {
		txs = append(txs, expense(5+i*5, "Shop", "Misc", recentEach))
	}
	for i := 0; i < 5; i++ {
		txs = append(txs, expense(35+i*5, "Shop", "Misc", priorEach))
	}
	return Input{Transactions: txs}
}

func TestSpendingTrend(t *testing.T) {
	t.Run("rising spend", func(t *testing.T) {
		out := analyzeSpendingTrend(trendInput(260, 200), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "spending-trend-up", out[0].ID)
		assert.Equal(t, model.SeverityMedium, out[0].Severity)
		assert.Equal(t, 8, out[0].Priority)

		data := out[0].Data.(model.TrendData)
		assert.InDelta(t, 30, data.ChangePercent, 1e-9)
	})

	t.Run("falling spend", func(t *testing.T) {
		out := analyzeSpendingTrend(trendInput(140, 200), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "spending-trend-down", out[0].ID)
		assert.Equal(t, model.SeverityLow, out[0].Severity)
	})

	t.Run("modest change is no opinion", func(t *testing.T) {
		assert.Empty(t, analyzeSpendingTrend(trendInput(220, 200), testNow))
	})

	t.Run("too few transactions", func(t *testing.T) {
		in := Input{Transactions: []model.Transaction{
			expense(5, "Shop", "", 1000), expense(40, "Shop", "", 100),
		}}
		assert.Empty(t, analyzeSpendingTrend(in, testNow))
	})

	t.Run("zero prior period is no opinion", func(t *testing.T) {
		var txs []model.Transaction
		for i := 0; i < 10; i++ {
			txs = append(txs, expense(1+i, "Shop", "", 100))
		}
		assert.Empty(t, analyzeSpendingTrend(Input{Transactions: txs}, testNow))
	})
}

func forecastInput(monthToDate float64, priorTotals ...float64) Input {
	var txs []model.Transaction
	for i, total := range priorTotals {
		offset := len(priorTotals) - i
		txs = append(txs, model.Transaction{
			ID:     fmt.Sprintf("prior-%d", i),
			Date:   testNow.AddDate(0, -offset, -5),
			Name:   "Bulk",
			Amount: total,
			Type:   model.TransactionExpense,
		})
	}
	if monthToDate > 0 {
		txs = append(txs, model.Transaction{
			ID:     "mtd",
			Date:   testNow.AddDate(0, 0, -10),
			Name:   "Bulk",
			Amount: monthToDate,
			Type:   model.TransactionExpense,
		})
	}
	return Input{Transactions: txs}
}

func TestSpendingForecast(t *testing.T) {
	// testNow is June 15: 15 of 30 days elapsed, so projection doubles
	// month-to-date spend.
	t.Run("on pace to overspend", func(t *testing.T) {
		out := analyzeSpendingForecast(forecastInput(750, 1000, 1000, 1000), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "forecast-overspend", out[0].ID)

		data := out[0].Data.(model.ForecastData)
		assert.InDelta(t, 1500, data.Projected, 1e-9)
		assert.InDelta(t, 1000, data.Predicted, 1e-9)
		assert.Equal(t, 15, data.ElapsedDays)
		assert.Equal(t, 30, data.DaysInMonth)
	})

	t.Run("under usual pace", func(t *testing.T) {
		out := analyzeSpendingForecast(forecastInput(300, 1000, 1000, 1000), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "forecast-under", out[0].ID)
	})

	t.Run("trend adjusts the baseline", func(t *testing.T) {
		// Totals 800, 1000, 1200 fit slope +200, so predicted is 1200.
		out := analyzeSpendingForecast(forecastInput(700, 800, 1000, 1200), testNow)
		require.Len(t, out, 1)
		data := out[0].Data.(model.ForecastData)
		assert.InDelta(t, 1200, data.Predicted, 1e-9)
		assert.Equal(t, "forecast-overspend", out[0].ID)
	})

	t.Run("single month of history is no opinion", func(t *testing.T) {
		assert.Empty(t, analyzeSpendingForecast(forecastInput(900, 1000), testNow))
	})

	t.Run("on trend is no opinion", func(t *testing.T) {
		assert.Empty(t, analyzeSpendingForecast(forecastInput(500, 1000, 1000, 1000), testNow))
	})
}

func TestSeasonalPattern(t *testing.T) {
	buildHistory := func(juneTotal float64) Input {
		var txs []model.Transaction
		// Five prior months at 1000 each, five transactions per month.
		for m := 1; m <= 5; m++ {
			for i := 0; i < 5; i++ {
				txs = append(txs, model.Transaction{
					ID:     fmt.Sprintf("m%d-%d", m, i),
					Date:   testNow.AddDate(0, -m, -3),
					Name:   "Shop",
					Amount: 200,
					Type:   model.TransactionExpense,
				})
			}
		}
		// Last year's June.
		for i := 0; i < 5; i++ {
			txs = append(txs, model.Transaction{
				ID:     fmt.Sprintf("june-%d", i),
				Date:   testNow.AddDate(-1, 0, -2),
				Name:   "Shop",
				Amount: juneTotal / 5,
				Type:   model.TransactionExpense,
			})
		}
		return Input{Transactions: txs}
	}

	t.Run("expensive month flagged", func(t *testing.T) {
		out := analyzeSeasonalPattern(buildHistory(2000), testNow)
		require.Len(t, out, 1)
		assert.Equal(t, "seasonal-june", out[0].ID)
		assert.Equal(t, model.CategorySeasonal, out[0].Category)

		data := out[0].Data.(model.SeasonalData)
		assert.InDelta(t, 2.0, data.Ratio, 1e-9)
	})

	t.Run("ordinary month is no opinion", func(t *testing.T) {
		assert.Empty(t, analyzeSeasonalPattern(buildHistory(1100), testNow))
	})

	t.Run("too few expenses", func(t *testing.T) {
		in := Input{Transactions: []model.Transaction{expense(1, "Shop", "", 100)}}
		assert.Empty(t, analyzeSeasonalPattern(in, testNow))
	})
}
