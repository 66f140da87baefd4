package configs

import (
	"log"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedRoles creates the fixed role lookup rows. IDs are part of the data
// model contract (1=super admin .. 4=owner staff), so they are set explicitly.
func SeedRoles() error {
	db := DB()

	roles := []entity.Role{
		{Model: gorm.Model{ID: uint(entity.RoleSuperAdmin)}, Name: "superadmin", Description: "Platform administrator"},
		{Model: gorm.Model{ID: uint(entity.RoleOwner)}, Name: "owner", Description: "Restaurant owner"},
		{Model: gorm.Model{ID: uint(entity.RoleSuperAdminStaff)}, Name: "superadmin_staff", Description: "Platform staff"},
		{Model: gorm.Model{ID: uint(entity.RoleOwnerStaff)}, Name: "owner_staff", Description: "Restaurant staff"},
	}
	for i := range roles {
		if err := db.FirstOrCreate(&roles[i], entity.Role{Model: gorm.Model{ID: roles[i].ID}}).Error; err != nil {
			return err
		}
	}

	log.Println("roles seeded")
	return nil
}

// SeedSuperAdmin creates the initial platform admin from ADMIN_EMAIL /
// ADMIN_PASSWORD. Skipped when either is missing or the account exists.
func SeedSuperAdmin(cfg *Config) error {
	db := DB()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding super admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("super admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		RoleID:    entity.RoleSuperAdmin,
	}
	return db.Create(&admin).Error
}
