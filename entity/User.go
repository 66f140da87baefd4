package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	RoleID RoleID `gorm:"not null" json:"roleId"`
	Role   Role   `json:"-"`

	// CreatedByID records who issued the invitation this account was created
	// from. It is lineage, not ownership.
	CreatedByID *uint `json:"createdById,omitempty"`

	// RestaurantID attaches owner staff to their restaurant.
	RestaurantID *uint `json:"restaurantId,omitempty"`

	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}
