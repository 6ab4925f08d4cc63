package ledger

import (
	"math"
	"strings"
)

// Summary holds the aggregate totals for a transaction snapshot.
// Totals are magnitudes; NetBalance is income minus expenses.
//
// All currency math here is float64, matching the precision of the
// source records. This is a known caveat: amounts that cannot be
// represented exactly in binary floating point accumulate rounding
// drift over very large snapshots.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetBalance    float64 `json:"net_balance"`
	Count         int     `json:"count"`
}

// ComputeSummary computes totals over a normalized snapshot. Empty
// input yields a zeroed summary; this never fails.
func ComputeSummary(transactions []Transaction) Summary {
	var s Summary
	for _, tx := range transactions {
		switch tx.Type {
		case TypeIncome:
			s.TotalIncome += tx.Amount
		case TypeExpense:
			s.TotalExpenses += tx.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses
	s.Count = len(transactions)
	return s
}

// SavingsProgress returns the rounded percentage of a savings goal
// reached, clamped to [0, 100]. A non-positive goal returns 0 so
// callers never divide by zero.
func SavingsProgress(currentSavings, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := math.Round(currentSavings / goal * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// CategoryProgress returns spent as a percentage of budget, clamped at
// 100. Overspend is knowable only by comparing spent and budget
// directly, not from this percentage. A non-positive budget returns 0.
func CategoryProgress(spent, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return math.Min(spent/budget*100, 100)
}

// DateGroup is one bucket of transactions sharing a date key.
type DateGroup struct {
	Date         string        `json:"date"`
	Transactions []Transaction `json:"transactions"`
}

// GroupByDate partitions a snapshot by its date tokens, preserving
// first-seen key order and the relative order of transactions within
// each group. The input order is whatever the store returned; groups
// are not re-sorted chronologically. Empty input yields no groups.
func GroupByDate(transactions []Transaction) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int, len(transactions))

	for _, tx := range transactions {
		i, seen := index[tx.Date]
		if !seen {
			i = len(groups)
			index[tx.Date] = i
			groups = append(groups, DateGroup{Date: tx.Date})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}

	return groups
}

// CategorySpend is the spend total for one expense category, with the
// category's share of all expenses and its presentation style.
type CategorySpend struct {
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
	Spent    float64 `json:"spent"`
	Share    float64 `json:"share"`
}

// CategoryBreakdown sums expense magnitudes per category in first-seen
// order and computes each category's percentage share of total
// expenses. Income transactions are ignored.
func CategoryBreakdown(transactions []Transaction) []CategorySpend {
	var breakdown []CategorySpend
	index := make(map[string]int)
	var total float64

	for _, tx := range transactions {
		if tx.Type != TypeExpense {
			continue
		}
		key := strings.ToLower(tx.Category)
		i, seen := index[key]
		if !seen {
			i = len(breakdown)
			index[key] = i
			style := CategoryStyle(tx.Category)
			breakdown = append(breakdown, CategorySpend{
				Category: tx.Category,
				Icon:     style.Icon,
				Color:    style.Color,
			})
		}
		breakdown[i].Spent += tx.Amount
		total += tx.Amount
	}

	if total > 0 {
		for i := range breakdown {
			breakdown[i].Share = breakdown[i].Spent / total * 100
		}
	}

	return breakdown
}
