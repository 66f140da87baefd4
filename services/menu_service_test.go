package services

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
)

func TestMenuCreateAssignsSequentialOrder(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	svc := NewMenuService(db, t.TempDir())

	first, err := svc.Create(rest.ID, "Lunch", "")
	require.NoError(t, err)
	second, err := svc.Create(rest.ID, "Dinner", "")
	require.NoError(t, err)
	third, err := svc.Create(rest.ID, "Drinks", "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
	assert.Equal(t, 3, third.DisplayOrder)
	assert.Equal(t, "lunch", first.Slug)
}

func TestMenuCreateSlugCollisionGetsSuffix(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	svc := NewMenuService(db, t.TempDir())

	a, err := svc.Create(rest.ID, "Specials", "")
	require.NoError(t, err)
	b, err := svc.Create(rest.ID, "Specials!", "")
	require.NoError(t, err)

	assert.Equal(t, "specials", a.Slug)
	assert.Equal(t, "specials-2", b.Slug)
}

func TestMenuCreateSameSlugDifferentRestaurant(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	restA := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	restB := seedRestaurant(t, db, owner.ID, "Golden Bowl", "golden-bowl")
	svc := NewMenuService(db, t.TempDir())

	a, err := svc.Create(restA.ID, "Lunch", "")
	require.NoError(t, err)
	b, err := svc.Create(restB.ID, "Lunch", "")
	require.NoError(t, err)

	assert.Equal(t, "lunch", a.Slug)
	assert.Equal(t, "lunch", b.Slug)
}

func TestMenuReorder(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	svc := NewMenuService(db, t.TempDir())

	lunch, err := svc.Create(rest.ID, "Lunch", "")
	require.NoError(t, err)
	dinner, err := svc.Create(rest.ID, "Dinner", "")
	require.NoError(t, err)
	drinks, err := svc.Create(rest.ID, "Drinks", "")
	require.NoError(t, err)

	t.Run("swap with previous", func(t *testing.T) {
		moved, err := svc.Reorder(dinner.ID, ReorderUp)
		require.NoError(t, err)
		assert.Equal(t, 1, moved.DisplayOrder)

		var other entity.Menu
		require.NoError(t, db.First(&other, lunch.ID).Error)
		assert.Equal(t, 2, other.DisplayOrder)
	})

	t.Run("boundary move is a no-op", func(t *testing.T) {
		moved, err := svc.Reorder(drinks.ID, ReorderDown)
		require.NoError(t, err)
		assert.Equal(t, 3, moved.DisplayOrder)
	})

	t.Run("orders stay a permutation of 1..n", func(t *testing.T) {
		var menus []entity.Menu
		require.NoError(t, db.Where("restaurant_id = ?", rest.ID).Order("display_order").Find(&menus).Error)
		for i, m := range menus {
			assert.Equal(t, i+1, m.DisplayOrder)
		}
	})

	t.Run("bad direction", func(t *testing.T) {
		_, err := svc.Reorder(lunch.ID, ReorderDirection("sideways"))
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestMenuDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	loc := seedLocation(t, db, rest.ID, "Downtown", "downtown")
	menu := seedMenu(t, db, rest.ID, "Lunch", "lunch", 1)
	seedAssignment(t, db, loc.ID, menu.ID, true)

	cat := &entity.MenuCategory{Name: "Starters", DisplayOrder: 1, MenuID: menu.ID, IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	item := &entity.MenuItem{Name: "Spring Rolls", DisplayOrder: 1, CategoryID: cat.ID, IsAvailable: true}
	require.NoError(t, db.Create(item).Error)

	svc := NewMenuService(db, t.TempDir())
	require.NoError(t, svc.Delete(menu.ID))

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&entity.MenuCategory{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&entity.LocationMenu{}).Count(&count)
	assert.Zero(t, count)
	db.Unscoped().Model(&entity.Menu{}).Count(&count)
	assert.Zero(t, count)

	assert.True(t, errors.Is(svc.Delete(menu.ID), ErrNotFound))
}

func TestMenuDeleteRemovesQRArtifacts(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	loc := seedLocation(t, db, rest.ID, "Downtown", "downtown")
	menu := seedMenu(t, db, rest.ID, "Lunch", "lunch", 1)
	seedAssignment(t, db, loc.ID, menu.ID, true)

	qrSvc := NewQRCodeService(db, "http://localhost:8000", dir)
	menuBound, err := qrSvc.Create(loc.ID, &menu.ID)
	require.NoError(t, err)
	locationBound, err := qrSvc.Create(loc.ID, nil)
	require.NoError(t, err)

	svc := NewMenuService(db, dir)
	require.NoError(t, svc.Delete(menu.ID))

	_, err = os.Stat(artifactPath(dir, menuBound.ImageURL))
	assert.True(t, os.IsNotExist(err))

	// the location-level code and its image survive
	_, err = os.Stat(artifactPath(dir, locationBound.ImageURL))
	assert.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&entity.QRCode{}).Where("location_id = ?", loc.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMenuUpdateRenameReslugs(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	svc := NewMenuService(db, t.TempDir())

	menu, err := svc.Create(rest.ID, "Lunch", "")
	require.NoError(t, err)

	name := "Weekend Brunch"
	updated, err := svc.Update(menu.ID, UpdateMenuInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "weekend-brunch", updated.Slug)

	_, err = svc.Update(999, UpdateMenuInput{Name: &name})
	assert.True(t, errors.Is(err, ErrNotFound))
}
