package entity

import (
	"gorm.io/gorm"
)

// QRCode binds a scannable image to a location and optionally one of its
// menus. TargetURL is derived from the slugs at creation; the stored image
// is an artifact, not the source of truth.
type QRCode struct {
	gorm.Model
	LocationID uint     `gorm:"uniqueIndex:idx_qr_codes_binding;not null" json:"locationId"`
	Location   Location `json:"-"`
	MenuID     *uint    `gorm:"uniqueIndex:idx_qr_codes_binding" json:"menuId,omitempty"`
	Menu       *Menu    `json:"menu,omitempty"`

	TargetURL string `gorm:"not null" json:"targetUrl"`
	ImageURL  string `gorm:"not null" json:"imageUrl"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`
}
