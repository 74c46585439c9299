package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"
)

// ListAuditLogs returns the current user's audit trail, newest first
func ListAuditLogs(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	// Parse query parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	action := c.Query("action")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.AuditLog{}).Where("user_id = ?", userID)

	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	query.Count(&total)

	var logs []models.AuditLog
	if result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logs); result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch audit logs",
		})
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetAuditActions returns available audit actions for filtering
func GetAuditActions(c *fiber.Ctx) error {
	actions := make([]string, len(models.AuditActions))
	for i, action := range models.AuditActions {
		actions[i] = string(action)
	}

	return c.JSON(actions)
}
