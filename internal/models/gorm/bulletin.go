package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bulletin is the weekly congregation bulletin. It stays in "rascunho" until
// the publish action stamps it.
type Bulletin struct {
	ID          string                   `gorm:"column:id;primaryKey;type:uuid"`
	Title       string                   `gorm:"column:title"`
	Content     string                   `gorm:"column:content"`
	Status      constants.BulletinStatus `gorm:"column:status;default:rascunho"`
	PublishedAt *time.Time               `gorm:"column:published_at"`
	CreatedAt   time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}

func (Bulletin) TableName() string { return "bulletins" }

func (b *Bulletin) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
