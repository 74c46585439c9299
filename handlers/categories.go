package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/services"
)

// ListCategories returns all categories for the current user
func ListCategories(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	categories, err := services.ListCategories(userID)
	if err != nil {
		return apiError(c, err, "Category not found")
	}

	return c.JSON(categories)
}

// CreateCategory creates a new category
func CreateCategory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var input models.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := services.CreateCategory(userID, input)
	if err != nil {
		return apiError(c, err, "Category not found")
	}

	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionCategoryCreate, &category.ID, "Created category: "+category.Name, c.IP())

	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory updates an existing category
func UpdateCategory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	var input models.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	category, err := services.UpdateCategory(uint(categoryID), userID, input)
	if err != nil {
		return apiError(c, err, "Category not found")
	}

	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionCategoryUpdate, &category.ID, "Updated category: "+category.Name, c.IP())

	return c.JSON(category)
}

// DeleteCategory deletes a category and detaches its transactions
func DeleteCategory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	categoryID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category ID",
		})
	}

	if err := services.DeleteCategory(uint(categoryID), userID); err != nil {
		return apiError(c, err, "Category not found")
	}

	deletedID := uint(categoryID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionCategoryDelete, &deletedID, "", c.IP())

	return c.SendStatus(fiber.StatusNoContent)
}
