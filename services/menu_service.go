package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"
	ReorderDown ReorderDirection = "down"
)

type MenuService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewMenuService(db *gorm.DB, uploadDir string) *MenuService {
	return &MenuService{DB: db, UploadDir: uploadDir}
}

func (s *MenuService) ListByRestaurant(restaurantID uint) ([]entity.Menu, error) {
	return repository.NewMenuRepository(s.DB).FindByRestaurant(restaurantID)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	menu, err := repository.NewMenuRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return menu, err
}

// Create derives the slug and assigns display_order = max+1. Slug lookup,
// max read, and insert share one transaction so concurrent creates cannot
// produce duplicate orders.
func (s *MenuService) Create(restaurantID uint, name, description string) (*entity.Menu, error) {
	if name == "" {
		return nil, ErrValidation
	}
	var menu *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewMenuRepository(tx)
		slug, err := uniqueSlug(name, func(slug string) (bool, error) {
			return repo.SlugExists(restaurantID, slug, 0)
		})
		if err != nil {
			return err
		}
		max, err := repo.MaxDisplayOrder(restaurantID)
		if err != nil {
			return err
		}
		menu = &entity.Menu{
			Name:         name,
			Slug:         slug,
			Description:  description,
			DisplayOrder: max + 1,
			RestaurantID: restaurantID,
			IsActive:     true,
		}
		return repo.Create(menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

type UpdateMenuInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (s *MenuService) Update(id uint, in UpdateMenuInput) (*entity.Menu, error) {
	var menu *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewMenuRepository(tx)
		var err error
		menu, err = repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil && *in.Name != menu.Name {
			slug, err := uniqueSlug(*in.Name, func(slug string) (bool, error) {
				return repo.SlugExists(menu.RestaurantID, slug, menu.ID)
			})
			if err != nil {
				return err
			}
			menu.Name = *in.Name
			menu.Slug = slug
		}
		if in.Description != nil {
			menu.Description = *in.Description
		}
		if in.IsActive != nil {
			menu.IsActive = *in.IsActive
		}
		return repo.Update(menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Reorder swaps display_order with the neighbor in the given direction.
// Moving past either end is a no-op and returns the row unchanged.
func (s *MenuService) Reorder(id uint, direction ReorderDirection) (*entity.Menu, error) {
	if direction != ReorderUp && direction != ReorderDown {
		return nil, ErrValidation
	}
	var menu *entity.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewMenuRepository(tx)
		current, err := repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		siblings, err := repo.FindByRestaurant(current.RestaurantID)
		if err != nil {
			return err
		}
		rows := make([]orderRow, len(siblings))
		for i, m := range siblings {
			rows[i] = orderRow{ID: m.ID, Order: m.DisplayOrder}
		}
		order, _, err := swapWithNeighbor(rows, current.ID, direction, repo.UpdateDisplayOrder)
		if err != nil {
			return err
		}
		current.DisplayOrder = order
		menu = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// Delete removes the menu and its subtree, then cleans up the image files of
// any QR codes that pointed at it.
func (s *MenuService) Delete(id uint) error {
	var artifacts []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewMenuRepository(tx).FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		urls, err := deleteMenuTree(tx, id)
		if err != nil {
			return err
		}
		artifacts = urls
		return nil
	})
	if err != nil {
		return err
	}
	removeArtifacts(s.UploadDir, artifacts)
	return nil
}

// orderRow is the minimal view of a sibling a reorder needs.
type orderRow struct {
	ID    uint
	Order int
}

// swapWithNeighbor exchanges display_order between currentID and its
// adjacent sibling. rows must be sorted by display_order ascending. Returns
// the row's new order and whether a swap happened; a boundary move is a
// no-op.
func swapWithNeighbor(rows []orderRow, currentID uint, direction ReorderDirection,
	setOrder func(id uint, order int) error) (int, bool, error) {

	idx := -1
	for i := range rows {
		if rows[i].ID == currentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, false, ErrNotFound
	}

	swapIdx := idx - 1
	if direction == ReorderDown {
		swapIdx = idx + 1
	}
	if swapIdx < 0 || swapIdx >= len(rows) {
		return rows[idx].Order, false, nil
	}

	neighbor := rows[swapIdx]
	if err := setOrder(currentID, neighbor.Order); err != nil {
		return 0, false, err
	}
	if err := setOrder(neighbor.ID, rows[idx].Order); err != nil {
		return 0, false, err
	}
	return neighbor.Order, true, nil
}
