package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string          `json:"imageUrl"`
	IsAvailable  bool            `gorm:"default:true" json:"isAvailable"`
	DisplayOrder int             `gorm:"not null" json:"displayOrder"`

	CategoryID uint         `gorm:"index;not null" json:"categoryId"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`
}
