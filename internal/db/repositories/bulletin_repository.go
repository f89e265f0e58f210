package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type BulletinRepository struct {
	db *gorm.DB
}

func NewBulletinRepository(db *gorm.DB) *BulletinRepository {
	return &BulletinRepository{db: db}
}

func (r *BulletinRepository) Create(ctx context.Context, bulletin *gormModels.Bulletin) error {
	if err := r.db.WithContext(ctx).Create(bulletin).Error; err != nil {
		return fmt.Errorf("failed to create bulletin: %w", err)
	}
	return nil
}

func (r *BulletinRepository) GetByID(ctx context.Context, id string) (*gormModels.Bulletin, error) {
	var bulletin gormModels.Bulletin

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bulletin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch bulletin: %w", err)
	}

	return &bulletin, nil
}

func (r *BulletinRepository) List(ctx context.Context) ([]gormModels.Bulletin, error) {
	var bulletins []gormModels.Bulletin
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&bulletins).Error; err != nil {
		return nil, fmt.Errorf("failed to list bulletins: %w", err)
	}
	return bulletins, nil
}

func (r *BulletinRepository) Update(ctx context.Context, bulletin *gormModels.Bulletin) error {
	res := r.db.WithContext(ctx).Model(bulletin).Select("*").Omit("id", "created_at").Updates(bulletin)
	if res.Error != nil {
		return fmt.Errorf("failed to update bulletin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BulletinRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Bulletin{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bulletin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
