package db

import (
	"fmt"
	"time"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/logging"
	models "igreja-digital/secretaria/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedPastor bootstraps the first pastor account when the users table is
// empty, so a fresh install can be logged into. Default credentials are
// pastor/senha123 and must be changed afterwards.
func SeedPastor(db *gorm.DB) error {
	var user models.User
	result := db.Where("username = ?", "pastor").First(&user)

	if result.Error == nil {
		return nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check for pastor account: %w", result.Error)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	member := models.Member{
		FullName:           "Pastor Titular",
		BirthDate:          "1970-01-01",
		CommunionStatus:    constants.CommunionCommuning,
		EcclesiasticalRole: constants.EcclPastor,
		MemberStatus:       constants.MemberActive,
		AdmissionDate:      time.Now().Format("2006-01-02"),
	}
	if err := db.Create(&member).Error; err != nil {
		return fmt.Errorf("failed to create seed member: %w", err)
	}

	pastor := models.User{
		Username:     "pastor",
		PasswordHash: string(hash),
		Role:         constants.RolePastor,
		MemberID:     &member.ID,
	}
	if err := db.Create(&pastor).Error; err != nil {
		return fmt.Errorf("failed to create pastor account: %w", err)
	}

	logging.Info("Seeded initial pastor account", "member_id", member.ID)
	return nil
}
