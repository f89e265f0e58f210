package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *gormModels.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]gormModels.Member, error) {
	var members []gormModels.Member

	err := r.db.WithContext(ctx).Order("full_name").Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *gormModels.Member) error {
	res := r.db.WithContext(ctx).Model(member).Select("*").Omit("id", "created_at").Updates(member)
	if res.Error != nil {
		return fmt.Errorf("failed to update member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Member{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
