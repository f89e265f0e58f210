package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// AuditRepository is append-only: audit rows are never updated or deleted.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) WithTx(tx *gorm.DB) *AuditRepository {
	return &AuditRepository{db: tx}
}

func (r *AuditRepository) Create(ctx context.Context, entry *gormModels.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// ListByRecord returns the audit trail of a single record, oldest first.
func (r *AuditRepository) ListByRecord(ctx context.Context, tableName, recordID string) ([]gormModels.AuditLog, error) {
	var entries []gormModels.AuditLog

	err := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", tableName, recordID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	return entries, nil
}
