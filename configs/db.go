package configs

import (
	"fmt"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.Restaurant{}, &entity.Location{},
		&entity.Menu{}, &entity.LocationMenu{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.QRCode{},
		&entity.Invitation{},
	)
}
