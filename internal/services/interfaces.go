package services

import (
	"context"

	"fintrack/internal/ledger"
	"fintrack/internal/models"
)

// TransactionPatch holds the optional fields of a partial transaction
// update. Nil fields are left untouched.
type TransactionPatch struct {
	Type        *string `json:"type,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Title       *string `json:"title,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// TransactionGateway issues create/read/update/delete requests for raw
// transaction records against the backing collection. All methods are
// fallible remote calls taking a context for cancellation; the gateway
// never retries internally.
type TransactionGateway interface {
	// List returns the complete collection in creation order, with no
	// server-side pagination or filtering. Filtering and aggregation
	// happen client-side over the normalized snapshot.
	List(ctx context.Context) ([]ledger.RawRecord, error)
	Create(ctx context.Context, record ledger.RawRecord) (string, error)
	Update(ctx context.Context, id string, patch TransactionPatch) error
	Delete(ctx context.Context, id string) error
}

// ProfilePatch holds the optional fields of a partial profile update.
type ProfilePatch struct {
	Name          *string  `json:"name,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	DOB           *string  `json:"dob,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Occupation    *string  `json:"occupation,omitempty"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
}

// ProfileGateway manages user profile records. Profiles are addressed
// by surrogate id for updates and by natural key (email) for the
// upsert flow used by the profile screen.
type ProfileGateway interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch ProfilePatch) (*models.User, error)
	// Upsert inserts or updates atomically keyed by email, replacing
	// the check-then-act sequence that loses one of two concurrent
	// first saves.
	Upsert(ctx context.Context, profile models.User) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}
