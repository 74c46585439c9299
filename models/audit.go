package models

import (
	"time"
)

type AuditAction string

const (
	AuditActionRegister          AuditAction = "register"
	AuditActionLogin             AuditAction = "login"
	AuditActionLogout            AuditAction = "logout"
	AuditActionCategoryCreate    AuditAction = "category_create"
	AuditActionCategoryUpdate    AuditAction = "category_update"
	AuditActionCategoryDelete    AuditAction = "category_delete"
	AuditActionTransactionCreate AuditAction = "transaction_create"
	AuditActionTransactionUpdate AuditAction = "transaction_update"
	AuditActionTransactionDelete AuditAction = "transaction_delete"
)

// AuditActions lists all actions for filter UIs.
var AuditActions = []AuditAction{
	AuditActionRegister,
	AuditActionLogin,
	AuditActionLogout,
	AuditActionCategoryCreate,
	AuditActionCategoryUpdate,
	AuditActionCategoryDelete,
	AuditActionTransactionCreate,
	AuditActionTransactionUpdate,
	AuditActionTransactionDelete,
}

type AuditLog struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index" json:"user_id"`
	Username  string      `json:"username"`
	Action    AuditAction `gorm:"index" json:"action"`
	EntityID  *uint       `gorm:"index" json:"entity_id,omitempty"`
	Details   string      `json:"details,omitempty"`
	IPAddress string      `json:"ip_address"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
}
