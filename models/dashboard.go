package models

// Summary is the owner's income/expense totals. Balance is always
// TotalIncome - TotalExpenses.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// CategoryTotal is the summed expense amount for one category label.
type CategoryTotal struct {
	Total float64 `json:"total"`
	Color string  `json:"color"`
}

// MonthTotal is the income/expense split for one calendar month.
// Month is a "YYYY-MM" key; months appear in chronological order.
type MonthTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// DashboardTransaction is a transaction re-shaped for display: the
// date is formatted as YYYY-MM-DD and a missing category renders as
// "Uncategorized" with the neutral color.
type DashboardTransaction struct {
	ID            uint    `json:"id"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	CategoryName  string  `json:"category_name"`
	CategoryColor string  `json:"category_color"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
}

// Dashboard is the full payload composed for the dashboard view.
type Dashboard struct {
	Transactions  []DashboardTransaction   `json:"transactions"`
	Summary       Summary                  `json:"summary"`
	Categories    []CategoryOption         `json:"categories"`
	CategoryChart map[string]CategoryTotal `json:"category_chart"`
}
