package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerlens/insights/internal/model"
)

func TestSimilarityKey(t *testing.T) {
	// Amounts snap to the nearest $5 bucket so minor drift collapses.
	assert.Equal(t, "netflix_15", similarityKey("Netflix", 15.49))
	assert.Equal(t, "netflix_15", similarityKey("NETFLIX", 16.20))
	assert.Equal(t, "netflix_20", similarityKey("netflix", 18.00))
	assert.Equal(t, "gym_45", similarityKey("  Gym  ", 44.10))
	assert.Equal(t, "gym_0", similarityKey("Gym", 2.40))
}

func TestTransactionsSince(t *testing.T) {
	txs := []model.Transaction{
		expense(1, "A", "", 1),
		expense(29, "B", "", 1),
		expense(31, "C", "", 1),
	}
	got := transactionsSince(txs, testNow, 30)
	assert.Len(t, got, 2)
	for _, tx := range got {
		assert.NotEqual(t, "C", tx.Name)
	}
}

func TestTransactionsBetween(t *testing.T) {
	txs := []model.Transaction{
		expense(10, "recent", "", 1),
		expense(40, "prior", "", 1),
		expense(70, "old", "", 1),
	}
	got := transactionsBetween(txs, testNow, 60, 30)
	assert.Len(t, got, 1)
	assert.Equal(t, "prior", got[0].Name)
}

func TestGroupByCategory(t *testing.T) {
	txs := []model.Transaction{
		expense(1, "A", "Food", 1),
		expense(2, "B", "Food", 1),
		expense(3, "C", "", 1),
	}
	groups := groupByCategory(txs)
	assert.Len(t, groups["Food"], 2)
	assert.Len(t, groups[model.UncategorizedCategory], 1)
}

func TestGroupByMonth(t *testing.T) {
	txs := []model.Transaction{
		{ID: "a", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Date: time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC)},
		{ID: "c", Date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)},
	}
	groups := groupByMonth(txs)
	assert.Len(t, groups["2025-06"], 2)
	assert.Len(t, groups["2025-05"], 1)
}

func TestGroupByWeekday(t *testing.T) {
	sat := time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	txs := []model.Transaction{
		{ID: "a", Date: sat},
		{ID: "b", Date: sat.AddDate(0, 0, -7)},
		{ID: "c", Date: sat.AddDate(0, 0, 1)},
	}
	groups := groupByWeekday(txs)
	assert.Len(t, groups[time.Saturday], 2)
	assert.Len(t, groups[time.Sunday], 1)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234.56", formatMoney("$", 1234.56))
	assert.Equal(t, "-$50.00", formatMoney("$", -50))
	assert.Equal(t, "€0.00", formatMoney("€", 0))
}
