package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type SeminarianRepository struct {
	db *gorm.DB
}

func NewSeminarianRepository(db *gorm.DB) *SeminarianRepository {
	return &SeminarianRepository{db: db}
}

func (r *SeminarianRepository) Create(ctx context.Context, seminarian *gormModels.Seminarian) error {
	if err := r.db.WithContext(ctx).Create(seminarian).Error; err != nil {
		return fmt.Errorf("failed to create seminarian: %w", err)
	}
	return nil
}

func (r *SeminarianRepository) GetByID(ctx context.Context, id string) (*gormModels.Seminarian, error) {
	var seminarian gormModels.Seminarian

	err := r.db.WithContext(ctx).Preload("Member").Where("id = ?", id).First(&seminarian).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seminarian: %w", err)
	}

	return &seminarian, nil
}

func (r *SeminarianRepository) List(ctx context.Context) ([]gormModels.Seminarian, error) {
	var seminarians []gormModels.Seminarian

	if err := r.db.WithContext(ctx).Preload("Member").Find(&seminarians).Error; err != nil {
		return nil, fmt.Errorf("failed to list seminarians: %w", err)
	}
	return seminarians, nil
}

func (r *SeminarianRepository) Update(ctx context.Context, seminarian *gormModels.Seminarian) error {
	res := r.db.WithContext(ctx).Model(seminarian).Select("*").Omit("id", "created_at", "Member").Updates(seminarian)
	if res.Error != nil {
		return fmt.Errorf("failed to update seminarian: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SeminarianRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Seminarian{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete seminarian: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
