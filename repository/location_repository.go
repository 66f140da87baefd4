package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

func (r *LocationRepository) FindByRestaurant(restaurantID uint) ([]entity.Location, error) {
	var locs []entity.Location
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&locs).Error
	return locs, err
}

func (r *LocationRepository) FindByID(id uint) (*entity.Location, error) {
	var loc entity.Location
	if err := r.DB.First(&loc, id).Error; err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) FindActiveBySlug(restaurantID uint, slug string) (*entity.Location, error) {
	var loc entity.Location
	err := r.DB.Where("restaurant_id = ? AND slug = ? AND is_active = ?", restaurantID, slug, true).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// FirstActive returns the earliest-created active location of a restaurant,
// used by the legacy single-segment redirect.
func (r *LocationRepository) FirstActive(restaurantID uint) (*entity.Location, error) {
	var loc entity.Location
	err := r.DB.Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("created_at ASC, id ASC").
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) SlugExists(restaurantID uint, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Location{}).
		Where("restaurant_id = ? AND slug = ?", restaurantID, slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *LocationRepository) Create(loc *entity.Location) error {
	return r.DB.Create(loc).Error
}

func (r *LocationRepository) Update(loc *entity.Location) error {
	return r.DB.Save(loc).Error
}

func (r *LocationRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Location{}, id).Error
}
