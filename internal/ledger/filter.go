package ledger

import "strings"

// TypeAll is the meta-filter value that matches every transaction type.
const TypeAll = "All"

// FilterOptions holds the optional criteria applied by Filter. Zero
// values are no-ops, as is the TypeAll meta-value and a
// whitespace-only query. Criteria compose with logical AND.
type FilterOptions struct {
	Category string `form:"category" json:"category"`
	Type     string `form:"type" json:"type"`
	Query    string `form:"q" json:"q"`
}

// Filter returns the subset of transactions matching the options.
// The result preserves the relative order of the input, and filtering
// is idempotent: applying the same options to a filtered result
// returns it unchanged. The input slice is never modified.
func Filter(transactions []Transaction, opts FilterOptions) []Transaction {
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	txType := strings.TrimSpace(opts.Type)
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	typeActive := txType != "" && !strings.EqualFold(txType, TypeAll)

	filtered := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if category != "" && strings.ToLower(tx.Category) != category {
			continue
		}
		if typeActive && !strings.EqualFold(string(tx.Type), txType) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(tx.Title), query) &&
			!strings.Contains(strings.ToLower(tx.Category), query) {
			continue
		}
		filtered = append(filtered, tx)
	}

	return filtered
}
