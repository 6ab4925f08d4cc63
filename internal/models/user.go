package models

// User represents a user profile. Password is write-only: stored as a
// bcrypt hash and never serialized in responses.
type User struct {
	Base
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	DOB           string   `json:"dob"`
	Address       string   `json:"address"`
	Occupation    string   `json:"occupation"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
}
