package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

type LocationService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewLocationService(db *gorm.DB, uploadDir string) *LocationService {
	return &LocationService{DB: db, UploadDir: uploadDir}
}

func (s *LocationService) ListByRestaurant(restaurantID uint) ([]entity.Location, error) {
	return repository.NewLocationRepository(s.DB).FindByRestaurant(restaurantID)
}

func (s *LocationService) Get(id uint) (*entity.Location, error) {
	loc, err := repository.NewLocationRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return loc, err
}

func (s *LocationService) Create(restaurantID uint, name, address string) (*entity.Location, error) {
	if name == "" {
		return nil, ErrValidation
	}
	var loc *entity.Location
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewLocationRepository(tx)
		slug, err := uniqueSlug(name, func(slug string) (bool, error) {
			return repo.SlugExists(restaurantID, slug, 0)
		})
		if err != nil {
			return err
		}
		loc = &entity.Location{
			Name:         name,
			Slug:         slug,
			Address:      address,
			RestaurantID: restaurantID,
			IsActive:     true,
		}
		return repo.Create(loc)
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

type UpdateLocationInput struct {
	Name     *string
	Address  *string
	IsActive *bool
}

func (s *LocationService) Update(id uint, in UpdateLocationInput) (*entity.Location, error) {
	var loc *entity.Location
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewLocationRepository(tx)
		var err error
		loc, err = repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil && *in.Name != loc.Name {
			slug, err := uniqueSlug(*in.Name, func(slug string) (bool, error) {
				return repo.SlugExists(loc.RestaurantID, slug, loc.ID)
			})
			if err != nil {
				return err
			}
			loc.Name = *in.Name
			loc.Slug = slug
		}
		if in.Address != nil {
			loc.Address = *in.Address
		}
		if in.IsActive != nil {
			loc.IsActive = *in.IsActive
		}
		return repo.Update(loc)
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes the location and its dependents (QR codes, menu
// assignments) in one transaction. Menus survive; they belong to the
// restaurant, not the location.
func (s *LocationService) Delete(id uint) error {
	var artifacts []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewLocationRepository(tx).FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		urls, err := deleteLocationTree(tx, id)
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
