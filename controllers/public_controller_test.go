package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ctlTestDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctl_test_%d?mode=memory&cache=shared", ctlTestDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Location{},
		&entity.Menu{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.LocationMenu{}, &entity.QRCode{},
	))
	return db
}

func newPublicRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewPublicController(services.NewPublicService(db))
	r.GET("/menus/:restaurantSlug/:locationSlug", ctl.Location)
	r.GET("/menus/:restaurantSlug/:locationSlug/:menuSlug", ctl.Menu)
	r.NoRoute(ctl.LegacyRedirect)
	return r
}

func seedPublicTenant(t *testing.T, db *gorm.DB) {
	t.Helper()
	owner := &entity.User{Email: "owner@example.com", Password: "x", RoleID: entity.RoleOwner}
	require.NoError(t, db.Create(owner).Error)
	rest := &entity.Restaurant{Name: "Jade Garden", Slug: "jade-garden", OwnerID: owner.ID, IsActive: true}
	require.NoError(t, db.Create(rest).Error)
	loc := &entity.Location{Name: "Downtown", Slug: "downtown", RestaurantID: rest.ID, IsActive: true}
	require.NoError(t, db.Create(loc).Error)
	menu := &entity.Menu{Name: "Lunch", Slug: "lunch", DisplayOrder: 1, RestaurantID: rest.ID, IsActive: true}
	require.NoError(t, db.Create(menu).Error)
	require.NoError(t, db.Create(&entity.LocationMenu{LocationID: loc.ID, MenuID: menu.ID, IsActive: true}).Error)
}

func TestPublicLocationPage(t *testing.T) {
	db := newTestDB(t)
	seedPublicTenant(t, db)
	r := newPublicRouter(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus/jade-garden/downtown", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Restaurant struct {
				Slug string `json:"slug"`
			} `json:"restaurant"`
			Menus []struct {
				Slug string `json:"slug"`
			} `json:"menus"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "jade-garden", body.Data.Restaurant.Slug)
	require.Len(t, body.Data.Menus, 1)
	assert.Equal(t, "lunch", body.Data.Menus[0].Slug)
}

func TestPublicMenuPage(t *testing.T) {
	db := newTestDB(t)
	seedPublicTenant(t, db)
	r := newPublicRouter(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus/jade-garden/downtown/lunch", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus/jade-garden/downtown/dinner", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicUnknownSlugs(t *testing.T) {
	db := newTestDB(t)
	seedPublicTenant(t, db)
	r := newPublicRouter(t, db)

	for _, path := range []string{
		"/menus/no-such/downtown",
		"/menus/jade-garden/no-such",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestLegacyRedirect(t *testing.T) {
	db := newTestDB(t)
	seedPublicTenant(t, db)
	r := newPublicRouter(t, db)

	t.Run("known slug redirects to the oldest active location", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jade-garden", nil))
		assert.Equal(t, http.StatusMovedPermanently, w.Code)
		assert.Equal(t, "/menus/jade-garden/downtown", w.Header().Get("Location"))
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-GET is never redirected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jade-garden", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
