package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visitor is a non-member tracked by the diaconate.
type Visitor struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	FullName  string    `gorm:"column:full_name"`
	Phone     *string   `gorm:"column:phone"`
	Email     *string   `gorm:"column:email"`
	FirstSeen string    `gorm:"column:first_seen"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Visitor) TableName() string { return "visitors" }

func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Seminarian tracks a member in formal theological training.
type Seminarian struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	MemberID    string    `gorm:"column:member_id;type:uuid"`
	Seminary    string    `gorm:"column:seminary"`
	StartYear   int       `gorm:"column:start_year"`
	ExpectedEnd *int      `gorm:"column:expected_end"`
	Notes       *string   `gorm:"column:notes"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Member *Member `gorm:"foreignKey:MemberID"`
}

func (Seminarian) TableName() string { return "seminarians" }

func (s *Seminarian) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DiaconalHelp records charitable assistance administered by the diaconate.
type DiaconalHelp struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Beneficiary string    `gorm:"column:beneficiary"`
	Amount      float64   `gorm:"column:amount"`
	Date        string    `gorm:"column:date"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (DiaconalHelp) TableName() string { return "diaconal_help" }

func (d *DiaconalHelp) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
