package repositories

import (
	"context"
	"fmt"
	"time"

	"igreja-digital/secretaria/internal/constants"
	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type LgpdRepository struct {
	db *gorm.DB
}

func NewLgpdRepository(db *gorm.DB) *LgpdRepository {
	return &LgpdRepository{db: db}
}

func (r *LgpdRepository) CreateConsent(ctx context.Context, consent *gormModels.LgpdConsent) error {
	if err := r.db.WithContext(ctx).Create(consent).Error; err != nil {
		return fmt.Errorf("failed to create consent: %w", err)
	}
	return nil
}

func (r *LgpdRepository) ListConsentsByUser(ctx context.Context, userID string) ([]gormModels.LgpdConsent, error) {
	var consents []gormModels.LgpdConsent
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("granted_at").Find(&consents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	return consents, nil
}

// RevokeConsent stamps a consent as revoked. Consents are never deleted.
func (r *LgpdRepository) RevokeConsent(ctx context.Context, id, userID string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&gormModels.LgpdConsent{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"granted": false, "revoked_at": &now})
	if res.Error != nil {
		return fmt.Errorf("failed to revoke consent: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LgpdRepository) CreateRequest(ctx context.Context, request *gormModels.LgpdRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *LgpdRepository) ListRequestsByUser(ctx context.Context, userID string) ([]gormModels.LgpdRequest, error) {
	var requests []gormModels.LgpdRequest
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// ResolveRequest is used by pastoral staff to close out a data-subject
// request.
func (r *LgpdRepository) ResolveRequest(ctx context.Context, id string, status constants.LgpdRequestStatus) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&gormModels.LgpdRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "resolved_at": &now})
	if res.Error != nil {
		return fmt.Errorf("failed to resolve request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
