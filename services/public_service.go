package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"gorm.io/gorm"
)

// PublicService resolves anonymous menu URLs. Every step requires the row
// to exist AND be active; any miss is ErrNotFound with no partial result.
type PublicService struct {
	DB *gorm.DB
}

func NewPublicService(db *gorm.DB) *PublicService {
	return &PublicService{DB: db}
}

// LocationPage is the public payload for /menus/{restaurant}/{location}.
type LocationPage struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Location   *entity.Location   `json:"location"`
	Menus      []entity.Menu      `json:"menus"`
}

// MenuPage is the public payload for /menus/{restaurant}/{location}/{menu}.
type MenuPage struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Location   *entity.Location   `json:"location"`
	Menu       *entity.Menu       `json:"menu"`
	Categories []PublicCategory   `json:"categories"`
}

type PublicCategory struct {
	entity.MenuCategory
	Items []entity.MenuItem `json:"items"`
}

func (s *PublicService) resolvePair(restaurantSlug, locationSlug string) (*entity.Restaurant, *entity.Location, error) {
	rest, err := repository.NewRestaurantRepository(s.DB).FindActiveBySlug(restaurantSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	loc, err := repository.NewLocationRepository(s.DB).FindActiveBySlug(rest.ID, locationSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return rest, loc, nil
}

// ResolveLocation returns the location page: the active menus actively
// assigned to this location, in display order.
func (s *PublicService) ResolveLocation(restaurantSlug, locationSlug string) (*LocationPage, error) {
	rest, loc, err := s.resolvePair(restaurantSlug, locationSlug)
	if err != nil {
		return nil, err
	}

	var menus []entity.Menu
	err = s.DB.
		Joins("JOIN location_menus ON location_menus.menu_id = menus.id").
		Where("location_menus.location_id = ? AND location_menus.is_active = ?", loc.ID, true).
		Where("menus.is_active = ?", true).
		Order("menus.display_order ASC").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}

	return &LocationPage{Restaurant: rest, Location: loc, Menus: menus}, nil
}

// ResolveMenu returns the full menu page. The menu must be active, belong
// to the restaurant, and be actively assigned to the location.
func (s *PublicService) ResolveMenu(restaurantSlug, locationSlug, menuSlug string) (*MenuPage, error) {
	rest, loc, err := s.resolvePair(restaurantSlug, locationSlug)
	if err != nil {
		return nil, err
	}

	menu, err := repository.NewMenuRepository(s.DB).FindActiveBySlug(rest.ID, menuSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	assigned, err := repository.NewLocationMenuRepository(s.DB).ActivePairExists(loc.ID, menu.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrNotFound
	}

	catRepo := repository.NewCategoryRepository(s.DB)
	itemRepo := repository.NewItemRepository(s.DB)
	cats, err := catRepo.FindActiveByMenu(menu.ID)
	if err != nil {
		return nil, err
	}
	page := &MenuPage{Restaurant: rest, Location: loc, Menu: menu, Categories: make([]PublicCategory, 0, len(cats))}
	for _, cat := range cats {
		items, err := itemRepo.FindAvailableByCategory(cat.ID)
		if err != nil {
			return nil, err
		}
		page.Categories = append(page.Categories, PublicCategory{MenuCategory: cat, Items: items})
	}
	return page, nil
}

// LegacyLocationPath resolves the old /{restaurantSlug} URL to the
// canonical two-segment path using the earliest-created active location.
func (s *PublicService) LegacyLocationPath(restaurantSlug string) (string, error) {
	rest, err := repository.NewRestaurantRepository(s.DB).FindActiveBySlug(restaurantSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	loc, err := repository.NewLocationRepository(s.DB).FirstActive(rest.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return TargetPath(rest.Slug, loc.Slug, ""), nil
}
