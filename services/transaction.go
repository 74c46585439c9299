package services

import (
	"errors"
	"fmt"
	"time"

	"budgetbook/database"
	"budgetbook/models"
)

// UncategorizedLabel groups expense totals for transactions without a
// category.
const UncategorizedLabel = "Uncategorized"

const dateLayout = "2006-01-02"

// parseDate accepts a plain YYYY-MM-DD date or a full RFC 3339
// timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		// Stored timestamps sort as text, so keep one zone
		return t.UTC(), nil
	}
	return time.Time{}, invalid("Invalid date format, expected YYYY-MM-DD")
}

func validateType(value string) (models.TransactionType, error) {
	switch models.TransactionType(value) {
	case models.TypeIncome:
		return models.TypeIncome, nil
	case models.TypeExpense:
		return models.TypeExpense, nil
	}
	return "", invalid("Type must be 'income' or 'expense'")
}

// checkCategoryOwner verifies the category exists and belongs to the
// owner; a foreign or missing category is a validation error.
func checkCategoryOwner(categoryID, userID uint) error {
	_, err := GetCategory(categoryID, userID)
	if errors.Is(err, ErrNotFound) {
		return invalid("Invalid category")
	}
	return err
}

// CreateTransaction records a new entry for the owner. The date
// defaults to now; the category, if given, must belong to the owner.
func CreateTransaction(userID uint, input models.TransactionInput) (*models.Transaction, error) {
	if input.Amount <= 0 {
		return nil, invalid("Amount must be greater than 0")
	}

	txType, err := validateType(input.Type)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != "" {
		date, err = parseDate(input.Date)
		if err != nil {
			return nil, err
		}
	}

	if input.CategoryID != nil {
		if err := checkCategoryOwner(*input.CategoryID, userID); err != nil {
			return nil, err
		}
	}

	transaction := models.Transaction{
		UserID:      userID,
		Amount:      input.Amount,
		Type:        txType,
		Description: input.Description,
		Date:        date,
		CategoryID:  input.CategoryID,
	}
	if result := database.DB.Create(&transaction); result.Error != nil {
		return nil, fmt.Errorf("create transaction: %w", result.Error)
	}

	return &transaction, nil
}

// ListTransactions returns the owner's transactions joined with
// category name and color, newest first; equal timestamps tie-break
// on id so the newest insertion wins.
func ListTransactions(userID uint) ([]models.TransactionRow, error) {
	var rows []models.TransactionRow
	result := database.DB.Table("transactions").
		Select("transactions.id, transactions.amount, transactions.type, transactions.description, transactions.date, transactions.category_id, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.date DESC, transactions.id DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("list transactions: %w", result.Error)
	}
	return rows, nil
}

// GetTransaction returns a single joined transaction, scoped to the
// owner.
func GetTransaction(id, userID uint) (*models.TransactionRow, error) {
	var row models.TransactionRow
	result := database.DB.Table("transactions").
		Select("transactions.id, transactions.amount, transactions.type, transactions.description, transactions.date, transactions.category_id, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ? AND transactions.user_id = ?", id, userID).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("get transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

// UpdateTransaction applies a partial update. Absent patch fields are
// left untouched; an explicit null category clears the reference.
func UpdateTransaction(id, userID uint, patch models.TransactionPatch) error {
	var transaction models.Transaction
	if result := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&transaction); result.Error != nil {
		return ErrNotFound
	}

	updates := map[string]interface{}{}

	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return invalid("Amount must be greater than 0")
		}
		updates["amount"] = *patch.Amount
	}

	if patch.Type != nil {
		txType, err := validateType(*patch.Type)
		if err != nil {
			return err
		}
		updates["type"] = txType
	}

	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	if patch.Date != nil {
		date, err := parseDate(*patch.Date)
		if err != nil {
			return err
		}
		updates["date"] = date
	}

	if patch.CategoryID.Set {
		if patch.CategoryID.Valid {
			if err := checkCategoryOwner(patch.CategoryID.Value, userID); err != nil {
				return err
			}
			updates["category_id"] = patch.CategoryID.Value
		} else {
			updates["category_id"] = nil
		}
	}

	if len(updates) == 0 {
		return invalid("No fields to update")
	}

	if result := database.DB.Model(&transaction).Updates(updates); result.Error != nil {
		return fmt.Errorf("update transaction: %w", result.Error)
	}

	return nil
}

// DeleteTransaction permanently removes a transaction, scoped to the
// owner.
func DeleteTransaction(id, userID uint) error {
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary returns the owner's income/expense totals and balance.
// With no transactions all three values are zero.
func Summary(userID uint) (models.Summary, error) {
	var totals struct {
		TotalIncome   float64
		TotalExpenses float64
	}
	result := database.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income, COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expenses").
		Where("user_id = ?", userID).
		Scan(&totals)
	if result.Error != nil {
		return models.Summary{}, fmt.Errorf("summary: %w", result.Error)
	}

	return models.Summary{
		TotalIncome:   totals.TotalIncome,
		TotalExpenses: totals.TotalExpenses,
		Balance:       totals.TotalIncome - totals.TotalExpenses,
	}, nil
}

// TotalsByCategory sums the owner's expenses per category label.
// Income is never included; transactions without a category are
// grouped under UncategorizedLabel.
func TotalsByCategory(userID uint) (map[string]models.CategoryTotal, error) {
	var rows []struct {
		Name  string
		Color string
		Total float64
	}
	result := database.DB.Table("transactions").
		Select("COALESCE(categories.name, ?) AS name, COALESCE(categories.color, ?) AS color, SUM(transactions.amount) AS total", UncategorizedLabel, models.DefaultColor).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, models.TypeExpense).
		Group("transactions.category_id, categories.name, categories.color").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("totals by category: %w", result.Error)
	}

	totals := make(map[string]models.CategoryTotal, len(rows))
	for _, row := range rows {
		totals[row.Name] = models.CategoryTotal{
			Total: row.Total,
			Color: row.Color,
		}
	}
	return totals, nil
}

// TotalsByMonth returns income/expense totals per calendar month over
// all of the owner's transactions, oldest month first. A month with
// activity on only one side reports zero for the other.
func TotalsByMonth(userID uint) ([]models.MonthTotal, error) {
	var rows []models.MonthTotal
	result := database.DB.Table("transactions").
		Select("strftime('%Y-%m', date) AS month, COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income, COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense").
		Where("user_id = ?", userID).
		Group("month").
		Order("month ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("totals by month: %w", result.Error)
	}
	return rows, nil
}
