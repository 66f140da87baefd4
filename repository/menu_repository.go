package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByRestaurant(restaurantID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("display_order ASC").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) FindActiveBySlug(restaurantID uint, slug string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Where("restaurant_id = ? AND slug = ? AND is_active = ?", restaurantID, slug, true).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) SlugExists(restaurantID uint, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Menu{}).
		Where("restaurant_id = ? AND slug = ?", restaurantID, slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// MaxDisplayOrder returns the highest display_order among a restaurant's
// menus, 0 when there are none.
func (r *MenuRepository) MaxDisplayOrder(restaurantID uint) (int, error) {
	var max int
	err := r.DB.Model(&entity.Menu{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

func (r *MenuRepository) UpdateDisplayOrder(id uint, order int) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Menu{}, id).Error
}
