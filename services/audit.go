package services

import (
	"budgetbook/database"
	"budgetbook/models"
)

// LogAudit creates an audit log entry
func LogAudit(userID uint, username string, action models.AuditAction, entityID *uint, details string, ipAddress string) {
	entry := models.AuditLog{
		UserID:    userID,
		Username:  username,
		Action:    action,
		EntityID:  entityID,
		Details:   details,
		IPAddress: ipAddress,
	}

	// Fire and forget - don't block on audit logging
	go func() {
		database.DB.Create(&entry)
	}()
}

// LogAuditSync creates an audit log entry synchronously
func LogAuditSync(userID uint, username string, action models.AuditAction, entityID *uint, details string, ipAddress string) error {
	entry := models.AuditLog{
		UserID:    userID,
		Username:  username,
		Action:    action,
		EntityID:  entityID,
		Details:   details,
		IPAddress: ipAddress,
	}

	return database.DB.Create(&entry).Error
}
