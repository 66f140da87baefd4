package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database per test. Each one gets its own
// DSN so pooled connections share the same database instead of silently
// opening empty ones.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Invitation{},
		&entity.Restaurant{},
		&entity.Location{},
		&entity.Menu{},
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.LocationMenu{},
		&entity.QRCode{},
	)
	require.NoError(t, err)
	return db
}

func seedOwner(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := &entity.User{Email: email, Password: "x", RoleID: entity.RoleOwner}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name, slug string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{Name: name, Slug: slug, OwnerID: ownerID, IsActive: true}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func seedLocation(t *testing.T, db *gorm.DB, restaurantID uint, name, slug string) *entity.Location {
	t.Helper()
	loc := &entity.Location{Name: name, Slug: slug, RestaurantID: restaurantID, IsActive: true}
	require.NoError(t, db.Create(loc).Error)
	return loc
}

func seedMenu(t *testing.T, db *gorm.DB, restaurantID uint, name, slug string, order int) *entity.Menu {
	t.Helper()
	menu := &entity.Menu{Name: name, Slug: slug, DisplayOrder: order, RestaurantID: restaurantID, IsActive: true}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func seedAssignment(t *testing.T, db *gorm.DB, locationID, menuID uint, active bool) *entity.LocationMenu {
	t.Helper()
	row := &entity.LocationMenu{LocationID: locationID, MenuID: menuID, IsActive: active}
	require.NoError(t, db.Create(row).Error)
	return row
}
