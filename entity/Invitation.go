package entity

import (
	"time"

	"gorm.io/gorm"
)

// Invitation is a single-use, time-boxed token that fixes the invited
// account's role at creation.
type Invitation struct {
	gorm.Model
	Email     string    `gorm:"not null" json:"email"`
	RoleID    RoleID    `gorm:"not null" json:"roleId"`
	Token     string    `gorm:"uniqueIndex;size:40;not null" json:"-"`
	Used      bool      `gorm:"default:false" json:"used"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`

	CreatedByID uint `gorm:"not null" json:"createdById"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID" json:"-"`

	// RestaurantID binds staff invitations to the inviter's restaurant.
	RestaurantID *uint `json:"restaurantId,omitempty"`
	// RestaurantName seeds the restaurant created when an owner invitation
	// is accepted.
	RestaurantName string `json:"restaurantName,omitempty"`
}
