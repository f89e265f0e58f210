package repositories

import (
	"context"
	"fmt"

	gormModels "igreja-digital/secretaria/internal/models/gorm"

	"gorm.io/gorm"
)

// TitheRepository, OfferingRepository and BookstoreSaleRepository back the
// flat treasury ledgers: rows are created, listed and deleted, never edited.

type TitheRepository struct {
	db *gorm.DB
}

func NewTitheRepository(db *gorm.DB) *TitheRepository {
	return &TitheRepository{db: db}
}

func (r *TitheRepository) Create(ctx context.Context, tithe *gormModels.Tithe) error {
	if err := r.db.WithContext(ctx).Create(tithe).Error; err != nil {
		return fmt.Errorf("failed to create tithe: %w", err)
	}
	return nil
}

func (r *TitheRepository) List(ctx context.Context) ([]gormModels.Tithe, error) {
	var tithes []gormModels.Tithe
	if err := r.db.WithContext(ctx).Order("date desc").Find(&tithes).Error; err != nil {
		return nil, fmt.Errorf("failed to list tithes: %w", err)
	}
	return tithes, nil
}

func (r *TitheRepository) ListByMember(ctx context.Context, memberID string) ([]gormModels.Tithe, error) {
	var tithes []gormModels.Tithe
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Order("date desc").Find(&tithes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tithes: %w", err)
	}
	return tithes, nil
}

func (r *TitheRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Tithe{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tithe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type OfferingRepository struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func (r *OfferingRepository) Create(ctx context.Context, offering *gormModels.Offering) error {
	if err := r.db.WithContext(ctx).Create(offering).Error; err != nil {
		return fmt.Errorf("failed to create offering: %w", err)
	}
	return nil
}

func (r *OfferingRepository) List(ctx context.Context) ([]gormModels.Offering, error) {
	var offerings []gormModels.Offering
	if err := r.db.WithContext(ctx).Order("date desc").Find(&offerings).Error; err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}
	return offerings, nil
}

func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Offering{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete offering: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type BookstoreSaleRepository struct {
	db *gorm.DB
}

func NewBookstoreSaleRepository(db *gorm.DB) *BookstoreSaleRepository {
	return &BookstoreSaleRepository{db: db}
}

func (r *BookstoreSaleRepository) Create(ctx context.Context, sale *gormModels.BookstoreSale) error {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create bookstore sale: %w", err)
	}
	return nil
}

func (r *BookstoreSaleRepository) List(ctx context.Context) ([]gormModels.BookstoreSale, error) {
	var sales []gormModels.BookstoreSale
	if err := r.db.WithContext(ctx).Order("date desc").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookstore sales: %w", err)
	}
	return sales, nil
}

func (r *BookstoreSaleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.BookstoreSale{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bookstore sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
