package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) ListByMenu(menuID uint) ([]entity.MenuCategory, error) {
	return repository.NewCategoryRepository(s.DB).FindByMenu(menuID)
}

func (s *CategoryService) Get(id uint) (*entity.MenuCategory, error) {
	cat, err := repository.NewCategoryRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cat, err
}

func (s *CategoryService) Create(menuID uint, name, description string) (*entity.MenuCategory, error) {
	if name == "" {
		return nil, ErrValidation
	}
	var cat *entity.MenuCategory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCategoryRepository(tx)
		max, err := repo.MaxDisplayOrder(menuID)
		if err != nil {
			return err
		}
		cat = &entity.MenuCategory{
			Name:         name,
			Description:  description,
			DisplayOrder: max + 1,
			MenuID:       menuID,
			IsActive:     true,
		}
		return repo.Create(cat)
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (s *CategoryService) Update(id uint, in UpdateCategoryInput) (*entity.MenuCategory, error) {
	repo := repository.NewCategoryRepository(s.DB)
	cat, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrValidation
		}
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if err := repo.Update(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Reorder(id uint, direction ReorderDirection) (*entity.MenuCategory, error) {
	if direction != ReorderUp && direction != ReorderDown {
		return nil, ErrValidation
	}
	var cat *entity.MenuCategory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCategoryRepository(tx)
		current, err := repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		siblings, err := repo.FindByMenu(current.MenuID)
		if err != nil {
			return err
		}
		rows := make([]orderRow, len(siblings))
		for i, c := range siblings {
			rows[i] = orderRow{ID: c.ID, Order: c.DisplayOrder}
		}
		order, _, err := swapWithNeighbor(rows, current.ID, direction, repo.UpdateDisplayOrder)
		if err != nil {
			return err
		}
		current.DisplayOrder = order
		cat = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes the category and its items.
func (s *CategoryService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCategoryRepository(tx)
		if _, err := repo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := repository.NewItemRepository(tx).DeleteByCategories([]uint{id}); err != nil {
			return err
		}
		return repo.Delete(id)
	})
}
