package entity

import (
	"gorm.io/gorm"
)

type Location struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Slug     string `gorm:"uniqueIndex:idx_locations_restaurant_slug;not null" json:"slug"`
	Address  string `json:"address"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_locations_restaurant_slug;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	LocationMenus []LocationMenu `json:"-"`
	QRCodes       []QRCode       `json:"-"`
}
