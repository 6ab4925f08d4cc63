package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/ledger"
	"fintrack/internal/models"
)

// transactionGateway implements TransactionGateway on the relational
// store. It deals only in raw records; normalization is the ledger's
// job.
type transactionGateway struct {
	db *gorm.DB
}

// NewTransactionGateway creates a new TransactionGateway.
func NewTransactionGateway(db *gorm.DB) TransactionGateway {
	return &transactionGateway{db: db}
}

// List returns every stored record in creation order. UUIDv7 primary
// keys are time-ordered, so ordering by id yields a stable
// first-created-first sequence across fetches.
func (g *transactionGateway) List(ctx context.Context) ([]ledger.RawRecord, error) {
	var records []models.TransactionRecord
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}

	raws := make([]ledger.RawRecord, len(records))
	for i, r := range records {
		raws[i] = ledger.RawRecord{
			ID:          r.ID,
			Type:        r.Type,
			Amount:      r.Amount,
			Title:       r.Title,
			Category:    r.Category,
			Description: r.Description,
			Date:        r.Date,
		}
	}
	return raws, nil
}

// Create validates and persists a new record, returning the
// store-assigned id. Validation runs the normalizer so malformed
// amounts and types are rejected at the boundary instead of surfacing
// later as skipped records.
func (g *transactionGateway) Create(ctx context.Context, record ledger.RawRecord) (string, error) {
	normalized, err := ledger.Normalize(record)
	if err != nil {
		return "", err
	}

	stored := &models.TransactionRecord{
		Type:        string(normalized.Type),
		Amount:      storedAmount(record.Amount, normalized.Amount),
		Title:       normalized.Title,
		Category:    record.Category,
		Description: record.Description,
		Date:        record.Date,
	}
	if err := g.db.WithContext(ctx).Create(stored).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	return stored.ID, nil
}

// Update applies a partial patch to an existing record. Patched fields
// are re-validated against the record's resulting state.
func (g *transactionGateway) Update(ctx context.Context, id string, patch TransactionPatch) error {
	var record models.TransactionRecord
	if err := g.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		return apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}

	updates := make(map[string]interface{})
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Amount != nil {
		updates["amount"] = strings.TrimSpace(*patch.Amount)
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if len(updates) == 0 {
		return nil
	}

	// Reject a patch that would leave the record un-normalizable.
	merged := record
	applyPatch(&merged, patch)
	if _, err := ledger.Normalize(ledger.RawRecord{
		ID:          merged.ID,
		Type:        merged.Type,
		Amount:      merged.Amount,
		Title:       merged.Title,
		Category:    merged.Category,
		Description: merged.Description,
		Date:        merged.Date,
	}); err != nil {
		return err
	}

	if err := g.db.WithContext(ctx).Model(&record).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrGatewayUnavailable, err)
	}
	return nil
}

// Delete removes a record permanently. There is no soft delete.
func (g *transactionGateway) Delete(ctx context.Context, id string) error {
	result := g.db.WithContext(ctx).Delete(&models.TransactionRecord{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrGatewayUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// storedAmount preserves the source's textual amount when one was
// given; otherwise it formats the parsed magnitude.
func storedAmount(raw any, magnitude float64) string {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return strconv.FormatFloat(magnitude, 'f', -1, 64)
}

func applyPatch(record *models.TransactionRecord, patch TransactionPatch) {
	if patch.Type != nil {
		record.Type = *patch.Type
	}
	if patch.Amount != nil {
		record.Amount = strings.TrimSpace(*patch.Amount)
	}
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Category != nil {
		record.Category = *patch.Category
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.Date != nil {
		record.Date = *patch.Date
	}
}
