package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"budgetbook/database"
	"budgetbook/models"
)

// hexColorRegex validates hex RGB colors like #FF6384
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validateCategoryName(name string) error {
	if name == "" {
		return invalid("Category name is required")
	}
	if len(name) < 2 {
		return invalid("Category name must be at least 2 characters")
	}
	if len(name) > 100 {
		return invalid("Category name must be at most 100 characters")
	}
	return nil
}

// ListCategories returns the owner's categories sorted by name.
func ListCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if result := database.DB.Where("user_id = ?", userID).Order("name").Find(&categories); result.Error != nil {
		return nil, fmt.Errorf("list categories: %w", result.Error)
	}
	return categories, nil
}

// GetCategory returns a category by id, scoped to the owner. A
// category belonging to another user is reported as not found.
func GetCategory(id, userID uint) (*models.Category, error) {
	var category models.Category
	if result := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&category); result.Error != nil {
		return nil, ErrNotFound
	}
	return &category, nil
}

// CreateCategory creates a category for the owner. The name must be
// unique among the owner's categories.
func CreateCategory(userID uint, input models.CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = models.DefaultColor
	}
	if !hexColorRegex.MatchString(color) {
		return nil, invalid("Color must be a hex value like #36A2EB")
	}

	exists, err := CategoryNameExists(userID, name, 0)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, invalid("A category with this name already exists")
	}

	category := models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
	}
	if result := database.DB.Create(&category); result.Error != nil {
		return nil, fmt.Errorf("create category: %w", result.Error)
	}

	return &category, nil
}

// UpdateCategory applies a partial update. Empty input fields are
// left untouched.
func UpdateCategory(id, userID uint, input models.CategoryInput) (*models.Category, error) {
	category, err := GetCategory(id, userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" && input.Color == "" {
		return nil, invalid("No fields to update")
	}

	if name != "" {
		if err := validateCategoryName(name); err != nil {
			return nil, err
		}
		exists, err := CategoryNameExists(userID, name, id)
		if err != nil {
			return nil, fmt.Errorf("check category name: %w", err)
		}
		if exists {
			return nil, invalid("A category with this name already exists")
		}
		category.Name = name
	}

	if input.Color != "" {
		if !hexColorRegex.MatchString(input.Color) {
			return nil, invalid("Color must be a hex value like #36A2EB")
		}
		category.Color = input.Color
	}

	if result := database.DB.Save(category); result.Error != nil {
		return nil, fmt.Errorf("update category: %w", result.Error)
	}

	return category, nil
}

// DeleteCategory removes a category. Transactions that referenced it
// keep everything except the reference, which is cleared first.
func DeleteCategory(id, userID uint) error {
	category, err := GetCategory(id, userID)
	if err != nil {
		return err
	}

	if result := database.DB.Model(&models.Transaction{}).
		Where("category_id = ? AND user_id = ?", id, userID).
		Update("category_id", nil); result.Error != nil {
		return fmt.Errorf("clear category references: %w", result.Error)
	}

	if result := database.DB.Delete(category); result.Error != nil {
		return fmt.Errorf("delete category: %w", result.Error)
	}

	return nil
}

// CategoryNameExists reports whether the owner already has a category
// with this name. A non-zero excludeID lets a rename ignore its own
// row.
func CategoryNameExists(userID uint, name string, excludeID uint) (bool, error) {
	query := database.DB.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if result := query.Count(&count); result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SeedDefaultCategories inserts the fixed default set for a new user.
// Insertions are independent: one failure does not abort the rest.
// Returns the number of categories created.
func SeedDefaultCategories(userID uint) int {
	count := 0
	for _, def := range models.DefaultCategories {
		category := models.Category{
			UserID: userID,
			Name:   def.Name,
			Color:  def.Color,
		}
		if result := database.DB.Create(&category); result.Error != nil {
			log.Printf("seed category %q for user %d: %v", def.Name, userID, result.Error)
			continue
		}
		count++
	}
	return count
}
