package repository

import (
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

type QRCodeRepository struct {
	DB *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) *QRCodeRepository {
	return &QRCodeRepository{DB: db}
}

func (r *QRCodeRepository) FindByLocation(locationID uint) ([]entity.QRCode, error) {
	var codes []entity.QRCode
	err := r.DB.Preload("Menu").
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&codes).Error
	return codes, err
}

func (r *QRCodeRepository) FindByMenu(menuID uint) ([]entity.QRCode, error) {
	var codes []entity.QRCode
	err := r.DB.Where("menu_id = ?", menuID).Find(&codes).Error
	return codes, err
}

func (r *QRCodeRepository) FindByID(id uint) (*entity.QRCode, error) {
	var code entity.QRCode
	if err := r.DB.First(&code, id).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

// BindingExists reports whether a QR row already covers this
// (location, menu-or-nil) tuple. The unique index cannot compare NULLs, so
// the nil case has to be an explicit query.
func (r *QRCodeRepository) BindingExists(locationID uint, menuID *uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.QRCode{}).Where("location_id = ?", locationID)
	if menuID == nil {
		q = q.Where("menu_id IS NULL")
	} else {
		q = q.Where("menu_id = ?", *menuID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *QRCodeRepository) Create(code *entity.QRCode) error {
	return r.DB.Create(code).Error
}

func (r *QRCodeRepository) Update(code *entity.QRCode) error {
	return r.DB.Save(code).Error
}

func (r *QRCodeRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.QRCode{}, id).Error
}

func (r *QRCodeRepository) DeleteByLocation(locationID uint) error {
	return r.DB.Unscoped().Where("location_id = ?", locationID).Delete(&entity.QRCode{}).Error
}

func (r *QRCodeRepository) DeleteByMenu(menuID uint) error {
	return r.DB.Unscoped().Where("menu_id = ?", menuID).Delete(&entity.QRCode{}).Error
}
