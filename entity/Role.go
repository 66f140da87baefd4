package entity

import (
	"gorm.io/gorm"
)

// RoleID is the platform role, fixed at account creation via invitation.
type RoleID uint

const (
	RoleSuperAdmin      RoleID = 1
	RoleOwner           RoleID = 2
	RoleSuperAdminStaff RoleID = 3
	RoleOwnerStaff      RoleID = 4
)

type Capability string

const (
	// CapManagePlatform grants access to every tenant.
	CapManagePlatform Capability = "manage_platform"
	// CapManageRestaurant grants access to the tenant the user owns or is attached to.
	CapManageRestaurant Capability = "manage_restaurant"
	CapInviteRestaurant Capability = "invite_restaurant"
	CapInviteStaff      Capability = "invite_staff"
)

var roleCapabilities = map[RoleID][]Capability{
	RoleSuperAdmin:      {CapManagePlatform, CapManageRestaurant, CapInviteRestaurant, CapInviteStaff},
	RoleOwner:           {CapManageRestaurant, CapInviteStaff},
	RoleSuperAdminStaff: {CapManagePlatform, CapManageRestaurant},
	RoleOwnerStaff:      {CapManageRestaurant},
}

func (r RoleID) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// StaffRole returns the staff role an inviter of this role creates:
// a super admin invites super-admin staff, an owner invites owner staff.
func (r RoleID) StaffRole() (RoleID, bool) {
	switch r {
	case RoleSuperAdmin:
		return RoleSuperAdminStaff, true
	case RoleOwner:
		return RoleOwnerStaff, true
	default:
		return 0, false
	}
}

type Role struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
