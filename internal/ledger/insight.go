package ledger

import (
	"fmt"
	"strings"
)

// MonthlyPoint is one month of aggregated income and expenses.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// MonthlySeries buckets transactions by calendar month in first-seen
// order. Only records whose date token starts with an ISO "YYYY-MM"
// prefix can be bucketed; display tokens like "Today" carry no month
// and are skipped.
func MonthlySeries(transactions []Transaction) []MonthlyPoint {
	var series []MonthlyPoint
	index := make(map[string]int)

	for _, tx := range transactions {
		month, ok := isoMonth(tx.Date)
		if !ok {
			continue
		}
		i, seen := index[month]
		if !seen {
			i = len(series)
			index[month] = i
			series = append(series, MonthlyPoint{Month: month})
		}
		switch tx.Type {
		case TypeIncome:
			series[i].Income += tx.Amount
		case TypeExpense:
			series[i].Expenses += tx.Amount
		}
		series[i].Savings = series[i].Income - series[i].Expenses
	}

	return series
}

// isoMonth extracts the "YYYY-MM" prefix of an ISO date token.
func isoMonth(date string) (string, bool) {
	if len(date) < 7 || date[4] != '-' {
		return "", false
	}
	for i, r := range date[:7] {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return date[:7], true
}

// Insight describes the month-over-month expense trend shown on the
// analytics screen.
type Insight struct {
	Difference float64 `json:"difference"`
	Percentage string  `json:"percentage"`
	Trend      string  `json:"trend"`
}

// SpendingInsight compares the two most recent points of a monthly
// series. It returns false when fewer than two months of data exist or
// the prior month had no expenses to compare against.
func SpendingInsight(series []MonthlyPoint) (Insight, bool) {
	if len(series) < 2 {
		return Insight{}, false
	}

	current := series[len(series)-1]
	previous := series[len(series)-2]
	if previous.Expenses == 0 {
		return Insight{}, false
	}

	diff := current.Expenses - previous.Expenses
	trend := "decreased"
	if diff > 0 {
		trend = "increased"
	}

	pct := fmt.Sprintf("%.1f", diff/previous.Expenses*100)
	pct = strings.TrimPrefix(pct, "-")

	return Insight{
		Difference: diff,
		Percentage: pct,
		Trend:      trend,
	}, true
}
