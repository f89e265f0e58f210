package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type DiaconalHelpRepository struct {
	db *gorm.DB
}

func NewDiaconalHelpRepository(db *gorm.DB) *DiaconalHelpRepository {
	return &DiaconalHelpRepository{db: db}
}

func (r *DiaconalHelpRepository) Create(ctx context.Context, help *gormModels.DiaconalHelp) error {
	if err := r.db.WithContext(ctx).Create(help).Error; err != nil {
		return fmt.Errorf("failed to create diaconal help record: %w", err)
	}
	return nil
}

func (r *DiaconalHelpRepository) GetByID(ctx context.Context, id string) (*gormModels.DiaconalHelp, error) {
	var help gormModels.DiaconalHelp

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&help).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch diaconal help record: %w", err)
	}

	return &help, nil
}

func (r *DiaconalHelpRepository) List(ctx context.Context) ([]gormModels.DiaconalHelp, error) {
	var helps []gormModels.DiaconalHelp
	if err := r.db.WithContext(ctx).Order("date desc").Find(&helps).Error; err != nil {
		return nil, fmt.Errorf("failed to list diaconal help records: %w", err)
	}
	return helps, nil
}

func (r *DiaconalHelpRepository) Update(ctx context.Context, help *gormModels.DiaconalHelp) error {
	res := r.db.WithContext(ctx).Model(help).Select("*").Omit("id", "created_at").Updates(help)
	if res.Error != nil {
		return fmt.Errorf("failed to update diaconal help record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiaconalHelpRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.DiaconalHelp{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete diaconal help record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
