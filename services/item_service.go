package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

type ItemService struct {
	DB *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{DB: db}
}

func (s *ItemService) ListByCategory(categoryID uint) ([]entity.MenuItem, error) {
	return repository.NewItemRepository(s.DB).FindByCategory(categoryID)
}

func (s *ItemService) Get(id uint) (*entity.MenuItem, error) {
	item, err := repository.NewItemRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}

func (s *ItemService) Create(categoryID uint, in CreateItemInput) (*entity.MenuItem, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, ErrValidation
	}
	var item *entity.MenuItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewItemRepository(tx)
		max, err := repo.MaxDisplayOrder(categoryID)
		if err != nil {
			return err
		}
		item = &entity.MenuItem{
			Name:         in.Name,
			Description:  in.Description,
			Price:        in.Price,
			ImageURL:     in.ImageURL,
			DisplayOrder: max + 1,
			CategoryID:   categoryID,
			IsAvailable:  true,
		}
		return repo.Create(item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	IsAvailable *bool
}

func (s *ItemService) Update(id uint, in UpdateItemInput) (*entity.MenuItem, error) {
	repo := repository.NewItemRepository(s.DB)
	item, err := repo.FindByID(id)
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
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, ErrValidation
		}
		item.Price = *in.Price
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if err := repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Reorder(id uint, direction ReorderDirection) (*entity.MenuItem, error) {
	if direction != ReorderUp && direction != ReorderDown {
		return nil, ErrValidation
	}
	var item *entity.MenuItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewItemRepository(tx)
		current, err := repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		siblings, err := repo.FindByCategory(current.CategoryID)
		if err != nil {
			return err
		}
		rows := make([]orderRow, len(siblings))
		for i, it := range siblings {
			rows[i] = orderRow{ID: it.ID, Order: it.DisplayOrder}
		}
		order, _, err := swapWithNeighbor(rows, current.ID, direction, repo.UpdateDisplayOrder)
		if err != nil {
			return err
		}
		current.DisplayOrder = order
		item = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(id uint) error {
	repo := repository.NewItemRepository(s.DB)
	if _, err := repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return repo.Delete(id)
}
