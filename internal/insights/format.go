package insights

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// formatMoney renders an amount with the user's currency symbol, grouped
// thousands, two decimals, and a leading sign for negative values,
// e.g. "-$50.00" or "$1,234.56".
func formatMoney(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + moneyPrinter.Sprintf("%.2f", amount)
}

// formatPercent renders a percentage with one decimal place.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// formatDays renders a day count rounded to whole days.
func formatDays(d float64) string {
	return fmt.Sprintf("%.0f days", d)
}

// plural appends "s" to a noun when n != 1.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// keySlug normalizes a free-text label into a stable id fragment.
func keySlug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
