package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of tracked mutations.
type AuditLog struct {
	ID            string                `gorm:"column:id;primaryKey;type:uuid"`
	UserID        *string               `gorm:"column:user_id;type:uuid"`
	Action        constants.AuditAction `gorm:"column:action"`
	TableName_    string                `gorm:"column:table_name"`
	RecordID      string                `gorm:"column:record_id"`
	ChangesBefore *string               `gorm:"column:changes_before"`
	ChangesAfter  *string               `gorm:"column:changes_after"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
