package models

// TransactionRecord is the raw persisted shape of a transaction, as it
// travels over the wire. Amount is stored as text because source
// records arrive with string or numeric amounts; parsing to a number
// happens in the ledger normalizer, never here. Icon and color are
// deliberately absent: presentation metadata is derived from the
// category on every fetch.
type TransactionRecord struct {
	Base
	Type        string `gorm:"not null;index" json:"type"`
	Amount      string `gorm:"not null" json:"amount"`
	Title       string `gorm:"not null" json:"title"`
	Category    string `gorm:"not null;index" json:"category"`
	Description string `json:"description"`
	Date        string `gorm:"not null" json:"date"`
}
