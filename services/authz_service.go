package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/gorm"
)

// AuthzService is the single authorization predicate. Every handler that
// touches a row in the tenant hierarchy walks the ownership chain through
// here before its body runs.
type AuthzService struct {
	DB *gorm.DB
}

func NewAuthzService(db *gorm.DB) *AuthzService {
	return &AuthzService{DB: db}
}

// allowRestaurant grants platform roles unconditionally, and tenant roles
// only when they own the restaurant or are staff attached to it.
func (s *AuthzService) allowRestaurant(userID uint, role entity.RoleID, rest *entity.Restaurant) error {
	if role.Can(entity.CapManagePlatform) {
		return nil
	}
	if !role.Can(entity.CapManageRestaurant) {
		return ErrForbidden
	}
	if rest.OwnerID == userID {
		return nil
	}
	var user entity.User
	if err := s.DB.First(&user, userID).Error; err == nil &&
		user.RestaurantID != nil && *user.RestaurantID == rest.ID {
		return nil
	}
	return ErrForbidden
}

func (s *AuthzService) CanManageRestaurant(userID uint, role entity.RoleID, restaurantID uint) error {
	var rest entity.Restaurant
	if err := s.DB.First(&rest, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.allowRestaurant(userID, role, &rest)
}

func (s *AuthzService) CanManageLocation(userID uint, role entity.RoleID, locationID uint) error {
	var loc entity.Location
	if err := s.DB.First(&loc, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.CanManageRestaurant(userID, role, loc.RestaurantID)
}

func (s *AuthzService) CanManageMenu(userID uint, role entity.RoleID, menuID uint) error {
	var menu entity.Menu
	if err := s.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.CanManageRestaurant(userID, role, menu.RestaurantID)
}

func (s *AuthzService) CanManageCategory(userID uint, role entity.RoleID, categoryID uint) error {
	var cat entity.MenuCategory
	if err := s.DB.First(&cat, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.CanManageMenu(userID, role, cat.MenuID)
}

func (s *AuthzService) CanManageItem(userID uint, role entity.RoleID, itemID uint) error {
	var item entity.MenuItem
	if err := s.DB.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.CanManageCategory(userID, role, item.CategoryID)
}

func (s *AuthzService) CanManageQRCode(userID uint, role entity.RoleID, qrCodeID uint) error {
	var code entity.QRCode
	if err := s.DB.First(&code, qrCodeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.CanManageLocation(userID, role, code.LocationID)
}
