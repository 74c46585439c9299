package handlers

import (
	"github.com/gofiber/fiber/v2"

	"budgetbook/middleware"
	"budgetbook/services"
)

// GetSummary returns the user's income/expense totals and balance
func GetSummary(c *fiber.Ctx) error {
	summary, err := services.Summary(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Summary not found")
	}

	return c.JSON(summary)
}

// GetCategoryTotals returns expense totals grouped by category
func GetCategoryTotals(c *fiber.Ctx) error {
	totals, err := services.TotalsByCategory(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Summary not found")
	}

	return c.JSON(totals)
}

// GetMonthlyTotals returns income/expense totals per calendar month
func GetMonthlyTotals(c *fiber.Ctx) error {
	totals, err := services.TotalsByMonth(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Summary not found")
	}

	return c.JSON(totals)
}

// GetDashboard returns the composed dashboard payload
func GetDashboard(c *fiber.Ctx) error {
	dashboard, err := services.BuildDashboard(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Dashboard not found")
	}

	return c.JSON(dashboard)
}

// GetCategoryChart renders the expense-by-category pie chart as PNG
func GetCategoryChart(c *fiber.Ctx) error {
	png, err := services.RenderCategoryChart(middleware.GetUserID(c))
	if err != nil {
		return apiError(c, err, "Chart not found")
	}
	if png == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No expense data to chart",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
