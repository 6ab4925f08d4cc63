package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperrors "fintrack/internal/errors"
)

// Normalize maps one raw store record into a canonical Transaction.
// It parses the amount (string or numeric) into a non-negative
// magnitude, validates type and title, and derives icon/color from the
// category. The input is not modified.
//
// Malformed amounts return ErrMalformedAmount rather than defaulting
// to zero: a silently dropped magnitude would corrupt every summary
// downstream.
func Normalize(raw RawRecord) (Transaction, error) {
	txType := TransactionType(strings.ToLower(strings.TrimSpace(raw.Type)))
	if !txType.Valid() {
		return Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidTransactionType, "unsupported transaction type: "+raw.Type)
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return Transaction{}, apperrors.ErrMissingTitle
	}

	magnitude, err := parseAmount(raw.Amount)
	if err != nil {
		return Transaction{}, err
	}

	style := CategoryStyle(raw.Category)

	return Transaction{
		ID:          raw.ID,
		Type:        txType,
		Amount:      magnitude,
		Title:       title,
		Category:    raw.Category,
		Description: raw.Description,
		Date:        raw.Date,
		Icon:        style.Icon,
		Color:       style.Color,
	}, nil
}

// SkippedRecord reports a raw record that failed normalization.
type SkippedRecord struct {
	ID  string
	Err error
}

// NormalizeAll normalizes a batch, skipping records that fail rather
// than aborting the whole fetch. Skipped records are returned for the
// caller to surface as warnings. Input order is preserved.
func NormalizeAll(raws []RawRecord) ([]Transaction, []SkippedRecord) {
	transactions := make([]Transaction, 0, len(raws))
	var skipped []SkippedRecord

	for _, raw := range raws {
		tx, err := Normalize(raw)
		if err != nil {
			skipped = append(skipped, SkippedRecord{ID: raw.ID, Err: err})
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, skipped
}

// parseAmount converts a wire amount into a finite non-negative
// float64 magnitude. Accepts the representations the store is known to
// return: strings, json.Number, and Go numeric types.
func parseAmount(amount any) (float64, error) {
	var value float64

	switch v := amount.(type) {
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrMalformedAmount, err)
		}
		value = parsed
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, apperrors.Wrap(apperrors.ErrMalformedAmount, err)
		}
		value = parsed
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	default:
		return 0, apperrors.WithMessage(apperrors.ErrMalformedAmount, "amount has unsupported type")
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperrors.WithMessage(apperrors.ErrMalformedAmount, "amount must be finite")
	}
	if value < 0 {
		return 0, apperrors.WithMessage(apperrors.ErrMalformedAmount, "amount must not be negative")
	}

	return value, nil
}
