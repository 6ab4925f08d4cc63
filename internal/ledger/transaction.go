// Package ledger holds the canonical transaction model and the pure
// computations over it: normalization of raw store records, summary
// aggregation, date grouping, and filtering. Nothing in this package
// performs I/O or mutates its input.
package ledger

// TransactionType is the kind of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the supported kinds.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// RawRecord is the unprocessed document returned by the store gateway
// before normalization. Amount is untyped because source records carry
// it as either a string or a number.
type RawRecord struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      any    `json:"amount"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
}

// Transaction is the canonical in-memory representation used by all
// core computations. Amount is the non-negative magnitude; Signed
// applies the sign implied by the type. Icon and Color are derived
// from the category on every normalization and never persisted as
// authoritative.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
}

// Signed returns the amount with the sign implied by the transaction
// type: positive for income, negative for expense.
func (t Transaction) Signed() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}
