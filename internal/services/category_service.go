package services

import (
	"errors"
	"fmt"

	"seabasket/internal/models"
	"seabasket/internal/repositories"

	"gorm.io/gorm"
)

// CategoryService handles category business logic.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// All returns every category.
func (s *CategoryService) All() ([]models.Category, error) {
	return s.repo.GetAll()
}

// Get returns a single category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, E(KindNotFound, "category_not_found")
		}
		return nil, err
	}
	return category, nil
}

// Create adds a new category.
func (s *CategoryService) Create(name string, status bool) (*models.Category, error) {
	category := &models.Category{CategoryName: name, Status: status}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// Update applies the provided fields to an existing category.
func (s *CategoryService) Update(id uint, name *string, status *bool) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		category.CategoryName = *name
	}
	if status != nil {
		category.Status = *status
	}
	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return E(KindNotFound, "category_not_found")
		}
		return err
	}
	return nil
}
