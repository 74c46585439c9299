package services

import (
	"path/filepath"
	"testing"

	"budgetbook/database"
	"budgetbook/models"
)

// setupDB points the package at a fresh database under the test's
// temp dir.
func setupDB(t *testing.T) {
	t.Helper()
	if err := database.Open(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("open test database: %v", err)
	}
}

func createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(username, "secret1")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func createCategory(t *testing.T, userID uint, name string) *models.Category {
	t.Helper()
	category, err := CreateCategory(userID, models.CategoryInput{Name: name})
	if err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func createTransaction(t *testing.T, userID uint, input models.TransactionInput) *models.Transaction {
	t.Helper()
	transaction, err := CreateTransaction(userID, input)
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return transaction
}

func isValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
