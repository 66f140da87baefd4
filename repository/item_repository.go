package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ?", categoryID).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindAvailableByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ? AND is_available = ?", categoryID, true).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) MaxDisplayOrder(categoryID uint) (int, error) {
	var max int
	err := r.DB.Model(&entity.MenuItem{}).
		Where("category_id = ?", categoryID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *ItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *ItemRepository) UpdateDisplayOrder(id uint, order int) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuItem{}, id).Error
}

func (r *ItemRepository) DeleteByCategories(categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	return r.DB.Unscoped().Where("category_id IN ?", categoryIDs).Delete(&entity.MenuItem{}).Error
}
