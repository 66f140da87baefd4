package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Order("created_at DESC").Find(&rests).Error
	return rests, err
}

// FindForUser returns restaurants the user owns or is attached to as staff.
func (r *RestaurantRepository) FindForUser(userID uint, staffRestaurantID *uint) ([]entity.Restaurant, error) {
	q := r.DB.Where("owner_id = ?", userID)
	if staffRestaurantID != nil {
		q = q.Or("id = ?", *staffRestaurantID)
	}
	var rests []entity.Restaurant
	err := q.Order("created_at DESC").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindActiveBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("slug = ? AND is_active = ?", slug, true).First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// SlugExists reports whether any restaurant other than excludeID already
// uses slug. Restaurant slugs are unique platform-wide.
func (r *RestaurantRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Restaurant{}, id).Error
}
