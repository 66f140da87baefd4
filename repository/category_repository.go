package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindByMenu(menuID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("menu_id = ?", menuID).
		Order("display_order ASC").
		Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindActiveByMenu(menuID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("menu_id = ? AND is_active = ?", menuID, true).
		Order("display_order ASC").
		Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) MaxDisplayOrder(menuID uint) (int, error) {
	var max int
	err := r.DB.Model(&entity.MenuCategory{}).
		Where("menu_id = ?", menuID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *CategoryRepository) Create(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *entity.MenuCategory) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) UpdateDisplayOrder(id uint, order int) error {
	return r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuCategory{}, id).Error
}

func (r *CategoryRepository) DeleteByMenu(menuID uint) error {
	return r.DB.Unscoped().Where("menu_id = ?", menuID).Delete(&entity.MenuCategory{}).Error
}
