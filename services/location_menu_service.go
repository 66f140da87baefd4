package services

import (
	"errors"
	"fmt"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

type LocationMenuService struct {
	DB *gorm.DB
}

func NewLocationMenuService(db *gorm.DB) *LocationMenuService {
	return &LocationMenuService{DB: db}
}

func (s *LocationMenuService) ListByLocation(locationID uint) ([]entity.LocationMenu, error) {
	return repository.NewLocationMenuRepository(s.DB).FindByLocation(locationID)
}

// Assign attaches a menu to a location. The menu must belong to the same
// restaurant. Re-assigning an inactive pair reactivates it; an active pair
// is a conflict.
func (s *LocationMenuService) Assign(locationID, menuID uint) (*entity.LocationMenu, error) {
	var row *entity.LocationMenu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		loc, err := repository.NewLocationRepository(tx).FindByID(locationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		menu, err := repository.NewMenuRepository(tx).FindByID(menuID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if menu.RestaurantID != loc.RestaurantID {
			return fmt.Errorf("%w: menu belongs to another restaurant", ErrValidation)
		}

		repo := repository.NewLocationMenuRepository(tx)
		existing, err := repo.FindPair(locationID, menuID)
		if err == nil {
			if existing.IsActive {
				return fmt.Errorf("%w: menu already assigned to location", ErrConflict)
			}
			existing.IsActive = true
			row = existing
			return repo.Update(existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row = &entity.LocationMenu{
			LocationID: locationID,
			MenuID:     menuID,
			IsActive:   true,
		}
		return repo.Create(row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Toggle flips the assignment's active flag without detaching it.
func (s *LocationMenuService) Toggle(locationID, menuID uint, active bool) (*entity.LocationMenu, error) {
	repo := repository.NewLocationMenuRepository(s.DB)
	row, err := repo.FindPair(locationID, menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	row.IsActive = active
	if err := repo.Update(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Remove detaches the menu from the location entirely.
func (s *LocationMenuService) Remove(locationID, menuID uint) error {
	repo := repository.NewLocationMenuRepository(s.DB)
	row, err := repo.FindPair(locationID, menuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return repo.Delete(row.ID)
}
