package ledger

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Run("no_op_returns_input_unchanged", func(t *testing.T) {
		input := sampleTransactions()

		for _, opts := range []FilterOptions{
			{},
			{Type: TypeAll},
			{Type: "all", Query: "   "},
		} {
			got := Filter(input, opts)
			if !reflect.DeepEqual(got, input) {
				t.Errorf("Filter(%+v) changed the input: %+v", opts, got)
			}
		}
	})

	t.Run("type_filter", func(t *testing.T) {
		got := Filter(sampleTransactions(), FilterOptions{Type: "income"})
		if len(got) != 2 {
			t.Fatalf("expected 2 income transactions, got %d", len(got))
		}
		for _, tx := range got {
			if tx.Type != TypeIncome {
				t.Errorf("expected only income, got %s", tx.Type)
			}
		}
	})

	t.Run("category_filter_case_insensitive", func(t *testing.T) {
		got := Filter(sampleTransactions(), FilterOptions{Category: "FOOD"})
		if len(got) != 2 {
			t.Fatalf("expected 2 food transactions, got %d", len(got))
		}
		if got[0].ID != "2" || got[1].ID != "3" {
			t.Errorf("expected stable order 2, 3; got %s, %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("query_matches_title_or_category", func(t *testing.T) {
		byTitle := Filter(sampleTransactions(), FilterOptions{Query: "COFFEE"})
		if len(byTitle) != 1 || byTitle[0].Title != "Coffee Shop" {
			t.Fatalf("expected exactly the Coffee Shop record, got %+v", byTitle)
		}

		byCategory := Filter(sampleTransactions(), FilterOptions{Query: "transport"})
		if len(byCategory) != 1 || byCategory[0].ID != "4" {
			t.Fatalf("expected the transport record, got %+v", byCategory)
		}
	})

	t.Run("filters_compose_with_and", func(t *testing.T) {
		got := Filter(sampleTransactions(), FilterOptions{Type: "expense", Category: "food", Query: "grocery"})
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("expected only the grocery record, got %+v", got)
		}

		// Order of application must not matter: same criteria, one at a time.
		stepwise := Filter(Filter(Filter(sampleTransactions(), FilterOptions{Query: "grocery"}), FilterOptions{Category: "food"}), FilterOptions{Type: "expense"})
		if !reflect.DeepEqual(got, stepwise) {
			t.Errorf("composed filter differs from stepwise application")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		opts := FilterOptions{Type: "expense", Query: "sho"}
		once := Filter(sampleTransactions(), opts)
		twice := Filter(once, opts)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("filter is not idempotent: %+v vs %+v", once, twice)
		}
	})

	t.Run("no_match", func(t *testing.T) {
		got := Filter(sampleTransactions(), FilterOptions{Query: "zzzz"})
		if len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		got := Filter(nil, FilterOptions{Type: "income"})
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})

	t.Run("does_not_mutate_input", func(t *testing.T) {
		input := sampleTransactions()
		snapshot := make([]Transaction, len(input))
		copy(snapshot, input)

		Filter(input, FilterOptions{Type: "expense"})

		if !reflect.DeepEqual(input, snapshot) {
			t.Error("filter mutated its input")
		}
	})
}

func TestSpendingInsight(t *testing.T) {
	t.Run("increase", func(t *testing.T) {
		insight, ok := SpendingInsight([]MonthlyPoint{
			{Month: "2025-05", Expenses: 2900},
			{Month: "2025-06", Expenses: 3200},
		})
		if !ok {
			t.Fatal("expected an insight")
		}
		if insight.Trend != "increased" {
			t.Errorf("expected increased, got %s", insight.Trend)
		}
		if insight.Difference != 300 {
			t.Errorf("expected difference 300, got %v", insight.Difference)
		}
		if insight.Percentage != "10.3" {
			t.Errorf("expected percentage 10.3, got %s", insight.Percentage)
		}
	})

	t.Run("decrease", func(t *testing.T) {
		insight, ok := SpendingInsight([]MonthlyPoint{
			{Month: "2025-05", Expenses: 3200},
			{Month: "2025-06", Expenses: 2900},
		})
		if !ok {
			t.Fatal("expected an insight")
		}
		if insight.Trend != "decreased" || insight.Difference != -300 {
			t.Errorf("unexpected insight: %+v", insight)
		}
	})

	t.Run("insufficient_data", func(t *testing.T) {
		if _, ok := SpendingInsight([]MonthlyPoint{{Month: "2025-06", Expenses: 100}}); ok {
			t.Error("expected no insight with one month")
		}
		if _, ok := SpendingInsight(nil); ok {
			t.Error("expected no insight with empty series")
		}
		if _, ok := SpendingInsight([]MonthlyPoint{{Month: "2025-05"}, {Month: "2025-06", Expenses: 10}}); ok {
			t.Error("expected no insight when prior month had no expenses")
		}
	})
}

func TestMonthlySeries(t *testing.T) {
	t.Run("buckets_iso_dates", func(t *testing.T) {
		series := MonthlySeries([]Transaction{
			{Type: TypeIncome, Amount: 8500, Date: "2025-05-01"},
			{Type: TypeExpense, Amount: 2900, Date: "2025-05-14"},
			{Type: TypeExpense, Amount: 3200, Date: "2025-06-02"},
			{Type: TypeExpense, Amount: 50, Date: "Today"},
		})

		if len(series) != 2 {
			t.Fatalf("expected 2 months, got %d", len(series))
		}
		if series[0].Month != "2025-05" || series[1].Month != "2025-06" {
			t.Errorf("unexpected months: %s, %s", series[0].Month, series[1].Month)
		}
		if series[0].Savings != 5600 {
			t.Errorf("expected May savings 5600, got %v", series[0].Savings)
		}
	})

	t.Run("skips_display_tokens", func(t *testing.T) {
		series := MonthlySeries([]Transaction{
			{Type: TypeExpense, Amount: 10, Date: "Yesterday"},
			{Type: TypeExpense, Amount: 10, Date: "2 days ago"},
		})
		if len(series) != 0 {
			t.Errorf("expected no buckets for display tokens, got %d", len(series))
		}
	})
}
