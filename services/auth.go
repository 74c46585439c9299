package services

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"budgetbook/database"
	"budgetbook/models"
)

// RegisterUser creates a new account and seeds its default
// categories. Only a bcrypt hash of the password is stored.
func RegisterUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, invalid("Username and password are required")
	}
	if len(username) < 3 {
		return nil, invalid("Username must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, invalid("Password must be at least 6 characters")
	}

	exists, err := UsernameExists(username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, invalid("Username is already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if result := database.DB.Create(&user); result.Error != nil {
		return nil, fmt.Errorf("create user: %w", result.Error)
	}

	seeded := SeedDefaultCategories(user.ID)
	if seeded < len(models.DefaultCategories) {
		log.Printf("seeded only %d of %d default categories for user %d",
			seeded, len(models.DefaultCategories), user.ID)
	}

	return &user, nil
}

// LoginUser verifies credentials and returns the user on success.
func LoginUser(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if result := database.DB.Where("username = ?", username).First(&user); result.Error != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUser returns a user by id.
func GetUser(id uint) (*models.User, error) {
	var user models.User
	if result := database.DB.First(&user, id); result.Error != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// UsernameExists reports whether the username is already taken.
func UsernameExists(username string) (bool, error) {
	var count int64
	if result := database.DB.Model(&models.User{}).Where("username = ?", username).Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
