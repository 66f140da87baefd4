package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type LocationMenuRepository struct {
	DB *gorm.DB
}

func NewLocationMenuRepository(db *gorm.DB) *LocationMenuRepository {
	return &LocationMenuRepository{DB: db}
}

func (r *LocationMenuRepository) FindByLocation(locationID uint) ([]entity.LocationMenu, error) {
	var rows []entity.LocationMenu
	err := r.DB.Preload("Menu").
		Where("location_id = ?", locationID).
		Find(&rows).Error
	return rows, err
}

func (r *LocationMenuRepository) FindByMenu(menuID uint) ([]entity.LocationMenu, error) {
	var rows []entity.LocationMenu
	err := r.DB.Where("menu_id = ?", menuID).Find(&rows).Error
	return rows, err
}

func (r *LocationMenuRepository) FindPair(locationID, menuID uint) (*entity.LocationMenu, error) {
	var row entity.LocationMenu
	err := r.DB.Where("location_id = ? AND menu_id = ?", locationID, menuID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ActivePairExists reports whether the menu is actively assigned to the
// location. The public resolver and the QR binder both require this proof.
func (r *LocationMenuRepository) ActivePairExists(locationID, menuID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.LocationMenu{}).
		Where("location_id = ? AND menu_id = ? AND is_active = ?", locationID, menuID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *LocationMenuRepository) Create(row *entity.LocationMenu) error {
	return r.DB.Create(row).Error
}

func (r *LocationMenuRepository) Update(row *entity.LocationMenu) error {
	return r.DB.Save(row).Error
}

func (r *LocationMenuRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.LocationMenu{}, id).Error
}

func (r *LocationMenuRepository) DeleteByMenu(menuID uint) error {
	return r.DB.Unscoped().Where("menu_id = ?", menuID).Delete(&entity.LocationMenu{}).Error
}

func (r *LocationMenuRepository) DeleteByLocation(locationID uint) error {
	return r.DB.Unscoped().Where("location_id = ?", locationID).Delete(&entity.LocationMenu{}).Error
}
