package services

import (
	"context"
	"time"

	"igreja-digital/secretaria/internal/constants"
	"igreja-digital/secretaria/internal/db/repositories"
	"igreja-digital/secretaria/internal/models/dtos"
	gormModels "igreja-digital/secretaria/internal/models/gorm"
)

// BulletinService manages the weekly bulletin and its publish action.
type BulletinService struct {
	bulletins *repositories.BulletinRepository
}

func NewBulletinService(bulletins *repositories.BulletinRepository) *BulletinService {
	return &BulletinService{bulletins: bulletins}
}

func (s *BulletinService) Create(ctx context.Context, req *dtos.BulletinRequest) (*gormModels.Bulletin, error) {
	verr := newValidationError()
	verr.require("title", req.Title)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	bulletin := &gormModels.Bulletin{
		Title:   req.Title,
		Content: req.Content,
		Status:  constants.BulletinDraft,
	}
	if err := s.bulletins.Create(ctx, bulletin); err != nil {
		return nil, err
	}
	return bulletin, nil
}

func (s *BulletinService) List(ctx context.Context) ([]gormModels.Bulletin, error) {
	return s.bulletins.List(ctx)
}

func (s *BulletinService) Update(ctx context.Context, id string, req *dtos.BulletinRequest) (*gormModels.Bulletin, error) {
	existing, err := s.bulletins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Content = req.Content

	if err := s.bulletins.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Publish stamps the bulletin. Publishing twice just refreshes the stamp.
func (s *BulletinService) Publish(ctx context.Context, id string) (*gormModels.Bulletin, error) {
	bulletin, err := s.bulletins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bulletin.Status = constants.BulletinPublished
	bulletin.PublishedAt = &now

	if err := s.bulletins.Update(ctx, bulletin); err != nil {
		return nil, err
	}
	return bulletin, nil
}

func (s *BulletinService) Delete(ctx context.Context, id string) error {
	return s.bulletins.Delete(ctx, id)
}
