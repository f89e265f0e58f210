package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LgpdConsent records a data-processing consent given or revoked by a data
// subject (member or visitor).
type LgpdConsent struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid"`
	Purpose   string    `gorm:"column:purpose"`
	Granted   bool      `gorm:"column:granted"`
	GrantedAt time.Time `gorm:"column:granted_at;autoCreateTime"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
}

func (LgpdConsent) TableName() string { return "lgpd_consents" }

func (c *LgpdConsent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// LgpdRequest is a data-subject request (export, correction, deletion).
type LgpdRequest struct {
	ID          string                      `gorm:"column:id;primaryKey;type:uuid"`
	UserID      string                      `gorm:"column:user_id;type:uuid"`
	RequestType string                      `gorm:"column:request_type"`
	Details     *string                     `gorm:"column:details"`
	Status      constants.LgpdRequestStatus `gorm:"column:status;default:pendente"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime"`
	ResolvedAt  *time.Time                  `gorm:"column:resolved_at"`
}

func (LgpdRequest) TableName() string { return "lgpd_requests" }

func (r *LgpdRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
