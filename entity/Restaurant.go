package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name      string `gorm:"not null" json:"name"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Address   string `json:"address"`
	LogoURL   string `json:"logoUrl"`
	BannerURL string `json:"bannerUrl"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	OwnerID uint `gorm:"index;not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Locations []Location `json:"-"`
	Menus     []Menu     `json:"-"`
}
