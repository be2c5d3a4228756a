package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// CategoryService implements category CRUD. Role gating happens at the
// route level; the category collaborator itself carries no role logic.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, imagePath string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Insert(ctx, &domain.Category{Name: name, Image: imagePath})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, name, imagePath string) (*domain.Category, error) {
	updated, err := s.repo.Update(ctx, id, name, imagePath)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", id).Msg("category updated")
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
