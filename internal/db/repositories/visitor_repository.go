package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, visitor *gormModels.Visitor) error {
	if err := r.db.WithContext(ctx).Create(visitor).Error; err != nil {
		return fmt.Errorf("failed to create visitor: %w", err)
	}
	return nil
}

func (r *VisitorRepository) GetByID(ctx context.Context, id string) (*gormModels.Visitor, error) {
	var visitor gormModels.Visitor

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&visitor).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch visitor: %w", err)
	}

	return &visitor, nil
}

func (r *VisitorRepository) List(ctx context.Context) ([]gormModels.Visitor, error) {
	var visitors []gormModels.Visitor

	if err := r.db.WithContext(ctx).Order("full_name").Find(&visitors).Error; err != nil {
		return nil, fmt.Errorf("failed to list visitors: %w", err)
	}
	return visitors, nil
}

func (r *VisitorRepository) Update(ctx context.Context, visitor *gormModels.Visitor) error {
	res := r.db.WithContext(ctx).Model(visitor).Select("*").Omit("id", "created_at").Updates(visitor)
	if res.Error != nil {
		return fmt.Errorf("failed to update visitor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Visitor{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete visitor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
