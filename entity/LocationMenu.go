package entity

import (
	"gorm.io/gorm"
)

// LocationMenu assigns a menu to a location. One row per pair.
type LocationMenu struct {
	gorm.Model
	LocationID uint     `gorm:"uniqueIndex:idx_location_menus_pair;not null" json:"locationId"`
	Location   Location `json:"-"`
	MenuID     uint     `gorm:"uniqueIndex:idx_location_menus_pair;not null" json:"menuId"`
	Menu       Menu     `json:"menu"`
	IsActive   bool     `gorm:"default:true" json:"isActive"`
}
