package services

import (
	"budgetbook/models"
)

// BuildDashboard composes the dashboard payload from the stores. No
// state of its own; every call recomputes.
func BuildDashboard(userID uint) (*models.Dashboard, error) {
	rows, err := ListTransactions(userID)
	if err != nil {
		return nil, err
	}

	summary, err := Summary(userID)
	if err != nil {
		return nil, err
	}

	chart, err := TotalsByCategory(userID)
	if err != nil {
		return nil, err
	}

	categories, err := ListCategories(userID)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.DashboardTransaction, len(rows))
	for i, row := range rows {
		name := UncategorizedLabel
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		color := models.DefaultColor
		if row.CategoryColor != nil {
			color = *row.CategoryColor
		}
		transactions[i] = models.DashboardTransaction{
			ID:            row.ID,
			Amount:        row.Amount,
			Type:          string(row.Type),
			CategoryName:  name,
			CategoryColor: color,
			Description:   row.Description,
			Date:          row.Date.Format(dateLayout),
		}
	}

	options := make([]models.CategoryOption, len(categories))
	for i, category := range categories {
		options[i] = category.ToOption()
	}

	return &models.Dashboard{
		Transactions:  transactions,
		Summary:       summary,
		Categories:    options,
		CategoryChart: chart,
	}, nil
}
