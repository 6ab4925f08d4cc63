package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", nextID()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransactionRecord persists a raw transaction record with the
// given type, amount (as stored on the wire), category, and date token.
func CreateTestTransactionRecord(t *testing.T, db *gorm.DB, txType, amount, category, date string) *models.TransactionRecord {
	t.Helper()

	record := &models.TransactionRecord{
		Type:     txType,
		Amount:   amount,
		Title:    fmt.Sprintf("Test Transaction %d", nextID()),
		Category: category,
		Date:     date,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test transaction record: %v", err)
	}
	return record
}
