package services

import (
	"context"
	"encoding/json"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/metrics"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// auditWriter appends audit rows inside the caller's transaction. Shared by
// every service that performs tracked mutations.
type auditWriter struct {
	audit      *repositories.AuditRepository
	metricsReg *metrics.MetricsRegistry
}

func (w *auditWriter) write(ctx context.Context, tx *gorm.DB, actorUserID *string,
	action constants.AuditAction, tableName, recordID string, before, after any) error {

	entry := &gormModels.AuditLog{
		UserID:        actorUserID,
		Action:        action,
		TableName_:    tableName,
		RecordID:      recordID,
		ChangesBefore: marshalChanges(before),
		ChangesAfter:  marshalChanges(after),
	}

	if err := w.audit.WithTx(tx).Create(ctx, entry); err != nil {
		return err
	}

	if w.metricsReg != nil {
		w.metricsReg.AuditRowsTotal.WithLabelValues(action.String()).Inc()
	}
	return nil
}

func marshalChanges(v any) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}
