package models

import (
	"time"
)

// DefaultColor is used when a category has no explicit color and for
// transactions without a category.
const DefaultColor = "#999999"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_owner_name" json:"user_id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_owner_name" json:"name"`
	Color     string    `gorm:"default:#999999" json:"color"` // Hex color for UI
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput is used for creating/updating categories. Empty
// fields are left untouched on update.
type CategoryInput struct {
	Name  string `json:"name" form:"name"`
	Color string `json:"color" form:"color"`
}

// CategoryOption is the compact shape used by selection UIs.
type CategoryOption struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (c *Category) ToOption() CategoryOption {
	return CategoryOption{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
	}
}

// DefaultCategories are created for every new user right after
// registration.
var DefaultCategories = []CategoryInput{
	{Name: "Groceries", Color: "#FF6384"},
	{Name: "Transport", Color: "#36A2EB"},
	{Name: "Housing", Color: "#FFCE56"},
	{Name: "Entertainment", Color: "#4BC0C0"},
	{Name: "Shopping", Color: "#9966FF"},
	{Name: "Health", Color: "#FF9F40"},
	{Name: "Education", Color: "#E7E9ED"},
	{Name: "Salary", Color: "#4BC0C0"},
	{Name: "Other", Color: "#95A5A6"},
}
