package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

type CatechumenRepository struct {
	db *gorm.DB
}

func NewCatechumenRepository(db *gorm.DB) *CatechumenRepository {
	return &CatechumenRepository{db: db}
}

// WithTx returns a repository bound to the given transaction. The promotion
// workflow uses this to keep the stage change, the member insert and the
// audit row atomic.
func (r *CatechumenRepository) WithTx(tx *gorm.DB) *CatechumenRepository {
	return &CatechumenRepository{db: tx}
}

func (r *CatechumenRepository) Create(ctx context.Context, catechumen *gormModels.Catechumen) error {
	if err := r.db.WithContext(ctx).Create(catechumen).Error; err != nil {
		return fmt.Errorf("failed to create catechumen: %w", err)
	}
	return nil
}

func (r *CatechumenRepository) GetByID(ctx context.Context, id string) (*gormModels.Catechumen, error) {
	var catechumen gormModels.Catechumen

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&catechumen).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch catechumen: %w", err)
	}

	return &catechumen, nil
}

func (r *CatechumenRepository) List(ctx context.Context) ([]gormModels.Catechumen, error) {
	var catechumens []gormModels.Catechumen

	err := r.db.WithContext(ctx).Order("full_name").Find(&catechumens).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catechumens: %w", err)
	}

	return catechumens, nil
}

func (r *CatechumenRepository) Update(ctx context.Context, catechumen *gormModels.Catechumen) error {
	res := r.db.WithContext(ctx).Model(catechumen).Select("*").Omit("id", "created_at", "Professor").Updates(catechumen)
	if res.Error != nil {
		return fmt.Errorf("failed to update catechumen: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatechumenRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Catechumen{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete catechumen: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
