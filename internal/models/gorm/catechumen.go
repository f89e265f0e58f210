package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catechumen tracks a person through the pre-membership instruction program.
// The stage transition into "concluido" fires the promotion workflow.
type Catechumen struct {
	ID                     string                    `gorm:"column:id;primaryKey;type:uuid"`
	FullName               string                    `gorm:"column:full_name"`
	StartDate              string                    `gorm:"column:start_date"`
	ExpectedProfessionDate *string                   `gorm:"column:expected_profession_date"`
	Stage                  constants.CatechumenStage `gorm:"column:stage;type:catechumen_stage"`
	ProfessorID            string                    `gorm:"column:professor_id;type:uuid"`
	Notes                  *string                   `gorm:"column:notes"`
	CreatedAt              time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time                 `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Professor *Member `gorm:"foreignKey:ProfessorID"`
}

// TableName specifies the table name for GORM
func (Catechumen) TableName() string {
	return "catechumens"
}

func (c *Catechumen) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
