package gorm

import (
	"time"

	"igreja-digital/secretaria/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login account. Most users are linked to a Member or Visitor
// record; pastor/treasurer accounts may stand alone.
type User struct {
	ID           string         `gorm:"column:id;primaryKey;type:uuid"`
	Username     string         `gorm:"column:username;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash"`
	Role         constants.Role `gorm:"column:role;type:user_role"`
	MemberID     *string        `gorm:"column:member_id;type:uuid"`
	VisitorID    *string        `gorm:"column:visitor_id;type:uuid"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
