package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/services"
)

// ListTransactions returns all transactions for the current user,
// newest first, with joined category name and color
func ListTransactions(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	transactions, err := services.ListTransactions(userID)
	if err != nil {
		return apiError(c, err, "Transaction not found")
	}

	return c.JSON(transactions)
}

// GetTransaction returns a single transaction by ID
func GetTransaction(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	transaction, err := services.GetTransaction(uint(transactionID), userID)
	if err != nil {
		return apiError(c, err, "Transaction not found")
	}

	return c.JSON(transaction)
}

// CreateTransaction records a new transaction
func CreateTransaction(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var input models.TransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	transaction, err := services.CreateTransaction(userID, input)
	if err != nil {
		return apiError(c, err, "Transaction not found")
	}

	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionCreate, &transaction.ID, "", c.IP())

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// UpdateTransaction applies a partial update to a transaction
func UpdateTransaction(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	var patch models.TransactionPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := services.UpdateTransaction(uint(transactionID), userID, patch); err != nil {
		return apiError(c, err, "Transaction not found")
	}

	updatedID := uint(transactionID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionUpdate, &updatedID, "", c.IP())

	return c.JSON(fiber.Map{
		"message": "Transaction updated",
	})
}

// DeleteTransaction permanently deletes a transaction
func DeleteTransaction(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	if err := services.DeleteTransaction(uint(transactionID), userID); err != nil {
		return apiError(c, err, "Transaction not found")
	}

	deletedID := uint(transactionID)
	username := middleware.GetUsername(c)
	services.LogAudit(userID, username, models.AuditActionTransactionDelete, &deletedID, "", c.IP())

	return c.SendStatus(fiber.StatusNoContent)
}
