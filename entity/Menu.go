package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex:idx_menus_restaurant_slug;not null" json:"slug"`
	Description string `json:"description"`
	// DisplayOrder is a total order among a restaurant's menus, 1-based.
	DisplayOrder int  `gorm:"not null" json:"displayOrder"`
	IsActive     bool `gorm:"default:true" json:"isActive"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_menus_restaurant_slug;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Categories    []MenuCategory `gorm:"foreignKey:MenuID" json:"-"`
	LocationMenus []LocationMenu `json:"-"`
}
