package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"not null" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	MenuID uint `gorm:"index;not null" json:"menuId"`
	Menu   Menu `json:"-"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
