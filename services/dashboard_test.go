package services

import (
	"bytes"
	"testing"

	"budgetbook/models"
)

func TestBuildDashboard(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	food := createCategory(t, user.ID, "Food")

	createTransaction(t, user.ID, models.TransactionInput{
		Amount:      50,
		Type:        "expense",
		Description: "weekly shop",
		Date:        "2024-01-15",
		CategoryID:  &food.ID,
	})
	createTransaction(t, user.ID, models.TransactionInput{
		Amount: 9.99,
		Type:   "expense",
		Date:   "2024-01-16",
	})
	createTransaction(t, user.ID, models.TransactionInput{
		Amount: 2000,
		Type:   "income",
		Date:   "2024-01-01",
	})

	dashboard, err := BuildDashboard(user.ID)
	if err != nil {
		t.Fatalf("BuildDashboard: %v", err)
	}

	if len(dashboard.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(dashboard.Transactions))
	}

	// Newest first; dates formatted as YYYY-MM-DD
	first := dashboard.Transactions[0]
	if first.Date != "2024-01-16" {
		t.Errorf("first date = %q, want 2024-01-16", first.Date)
	}
	if first.CategoryName != UncategorizedLabel {
		t.Errorf("missing category rendered as %q, want %q", first.CategoryName, UncategorizedLabel)
	}
	if first.CategoryColor != models.DefaultColor {
		t.Errorf("missing category color = %q, want %q", first.CategoryColor, models.DefaultColor)
	}

	second := dashboard.Transactions[1]
	if second.CategoryName != "Food" || second.Description != "weekly shop" {
		t.Errorf("joined transaction = %+v", second)
	}

	if !almostEqual(dashboard.Summary.TotalIncome, 2000) || !almostEqual(dashboard.Summary.TotalExpenses, 59.99) {
		t.Errorf("summary = %+v", dashboard.Summary)
	}

	// Nine defaults plus Food
	if len(dashboard.Categories) != len(models.DefaultCategories)+1 {
		t.Errorf("got %d category options, want %d", len(dashboard.Categories), len(models.DefaultCategories)+1)
	}

	if _, ok := dashboard.CategoryChart["Food"]; !ok {
		t.Errorf("category chart missing Food: %+v", dashboard.CategoryChart)
	}
	if _, ok := dashboard.CategoryChart[UncategorizedLabel]; !ok {
		t.Errorf("category chart missing %s bucket", UncategorizedLabel)
	}
}

func TestRenderCategoryChart(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")

	// No expense data renders nothing
	png, err := RenderCategoryChart(user.ID)
	if err != nil {
		t.Fatalf("RenderCategoryChart (empty): %v", err)
	}
	if png != nil {
		t.Fatalf("expected nil chart for empty data, got %d bytes", len(png))
	}

	food := createCategory(t, user.ID, "Food")
	createTransaction(t, user.ID, models.TransactionInput{Amount: 30, Type: "expense", CategoryID: &food.ID})
	createTransaction(t, user.ID, models.TransactionInput{Amount: 12, Type: "expense"})

	png, err = RenderCategoryChart(user.ID)
	if err != nil {
		t.Fatalf("RenderCategoryChart: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (%d bytes)", len(png))
	}
}
