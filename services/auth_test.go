package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"budgetbook/models"
)

func TestRegisterUserValidation(t *testing.T) {
	setupDB(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "secret1"},
		{"empty password", "alice", ""},
		{"short username", "al", "secret1"},
		{"short password", "alice", "12345"},
		{"whitespace username", "   ", "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RegisterUser(tt.username, tt.password)
			if !isValidation(err) {
				t.Errorf("RegisterUser(%q, %q) = %v, want validation error", tt.username, tt.password, err)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)

	user, err := RegisterUser("alice", "secret1")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a generated user id")
	}

	// Only a hash is stored, never the cleartext
	if user.PasswordHash == "secret1" {
		t.Fatal("password stored in cleartext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	logged, err := LoginUser("alice", "secret1")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("login returned user %d, want %d", logged.ID, user.ID)
	}

	if _, err := LoginUser("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := LoginUser("nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupDB(t)

	if _, err := RegisterUser("alice", "secret1"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := RegisterUser("alice", "othersecret")
	if !isValidation(err) {
		t.Fatalf("second registration: got %v, want validation error", err)
	}
}

func TestRegisterSeedsDefaultCategories(t *testing.T) {
	setupDB(t)

	user := createUser(t, "alice")

	categories, err := ListCategories(user.ID)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != len(models.DefaultCategories) {
		t.Fatalf("got %d default categories, want %d", len(categories), len(models.DefaultCategories))
	}

	// Sorted by name
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name > categories[i].Name {
			t.Fatalf("categories not sorted: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
}

func TestSeedDefaultCategoriesKeepsSuccesses(t *testing.T) {
	setupDB(t)

	user := createUser(t, "alice")

	// Registration already seeded everything; a second run hits the
	// unique constraint on every row but must not abort.
	if n := SeedDefaultCategories(user.ID); n != 0 {
		t.Errorf("re-seed created %d categories, want 0", n)
	}

	// Delete one and re-seed: only the gap is filled.
	categories, err := ListCategories(user.ID)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if err := DeleteCategory(categories[0].ID, user.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if n := SeedDefaultCategories(user.ID); n != 1 {
		t.Errorf("partial re-seed created %d categories, want 1", n)
	}
}

func TestUsernameExists(t *testing.T) {
	setupDB(t)

	createUser(t, "alice")

	exists, err := UsernameExists("alice")
	if err != nil || !exists {
		t.Errorf("UsernameExists(alice) = %v, %v, want true", exists, err)
	}
	exists, err = UsernameExists("bob")
	if err != nil || exists {
		t.Errorf("UsernameExists(bob) = %v, %v, want false", exists, err)
	}
}
