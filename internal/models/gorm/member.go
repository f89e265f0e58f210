package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is the canonical person record of the congregation. Records can be
// created directly by pastoral staff or synthesized by the catechumen
// promotion workflow, in which case NeedsCompletion is set and the personal
// fields carry placeholder values.
type Member struct {
	ID                 string                       `gorm:"column:id;primaryKey;type:uuid"`
	FullName           string                       `gorm:"column:full_name"`
	BirthDate          string                       `gorm:"column:birth_date"`
	Gender             string                       `gorm:"column:gender"`
	Phone              string                       `gorm:"column:phone"`
	Email              string                       `gorm:"column:email"`
	Address            string                       `gorm:"column:address"`
	CommunionStatus    constants.CommunionStatus    `gorm:"column:communion_status;type:communion_status"`
	EcclesiasticalRole constants.EcclesiasticalRole `gorm:"column:ecclesiastical_role;type:ecclesiastical_role"`
	MemberStatus       constants.MemberStatus       `gorm:"column:member_status;type:member_status"`
	AdmissionDate      string                       `gorm:"column:admission_date"`
	LgpdConsentURL     *string                      `gorm:"column:lgpd_consent_url"`
	PastoralNotes      *string                      `gorm:"column:pastoral_notes"`
	NeedsCompletion    bool                         `gorm:"column:needs_completion;default:false"`
	CreatedAt          time.Time                    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                    `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
