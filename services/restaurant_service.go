package services

import (
	"errors"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB        *gorm.DB
	UploadDir string
}

func NewRestaurantService(db *gorm.DB, uploadDir string) *RestaurantService {
	return &RestaurantService{DB: db, UploadDir: uploadDir}
}

// ListFor returns every restaurant for platform roles, otherwise the
// caller's own tenant.
func (s *RestaurantService) ListFor(userID uint, role entity.RoleID) ([]entity.Restaurant, error) {
	repo := repository.NewRestaurantRepository(s.DB)
	if role.Can(entity.CapManagePlatform) {
		return repo.FindAll()
	}
	var user entity.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return repo.FindForUser(userID, user.RestaurantID)
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := repository.NewRestaurantRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return rest, err
}

// CreateRestaurantForOwner inserts a restaurant with a platform-unique slug
// derived from the name. It runs on the caller's transaction so sign-up and
// invitation acceptance stay atomic.
func CreateRestaurantForOwner(tx *gorm.DB, ownerID uint, name, address string) (*entity.Restaurant, error) {
	if name == "" {
		return nil, ErrValidation
	}
	repo := repository.NewRestaurantRepository(tx)
	slug, err := uniqueSlug(name, func(slug string) (bool, error) {
		return repo.SlugExists(slug, 0)
	})
	if err != nil {
		return nil, err
	}
	rest := &entity.Restaurant{
		Name:     name,
		Slug:     slug,
		Address:  address,
		OwnerID:  ownerID,
		IsActive: true,
	}
	if err := repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// Create onboards a restaurant directly (super-admin path). The owner
// account must already exist.
func (s *RestaurantService) Create(ownerID uint, name, address string) (*entity.Restaurant, error) {
	var rest *entity.Restaurant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var owner entity.User
		if err := tx.First(&owner, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var err error
		rest, err = CreateRestaurantForOwner(tx, ownerID, name, address)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

type UpdateRestaurantInput struct {
	Name      *string
	Address   *string
	LogoURL   *string
	BannerURL *string
	IsActive  *bool
}

// Update applies the given fields. A rename re-derives the slug.
func (s *RestaurantService) Update(id uint, in UpdateRestaurantInput) (*entity.Restaurant, error) {
	var rest *entity.Restaurant
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewRestaurantRepository(tx)
		var err error
		rest, err = repo.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if in.Name != nil && *in.Name != rest.Name {
			slug, err := uniqueSlug(*in.Name, func(slug string) (bool, error) {
				return repo.SlugExists(slug, rest.ID)
			})
			if err != nil {
				return err
			}
			rest.Name = *in.Name
			rest.Slug = slug
		}
		if in.Address != nil {
			rest.Address = *in.Address
		}
		if in.LogoURL != nil {
			rest.LogoURL = *in.LogoURL
		}
		if in.BannerURL != nil {
			rest.BannerURL = *in.BannerURL
		}
		if in.IsActive != nil {
			rest.IsActive = *in.IsActive
		}
		return repo.Update(rest)
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// Delete removes the whole tenant in one transaction: items, categories,
// location_menus, qr codes, menus, locations, then the restaurant. The
// store enforces no native cascade, so the order is explicit.
func (s *RestaurantService) Delete(id uint) error {
	var artifacts []string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		restRepo := repository.NewRestaurantRepository(tx)
		if _, err := restRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		menuRepo := repository.NewMenuRepository(tx)
		menus, err := menuRepo.FindByRestaurant(id)
		if err != nil {
			return err
		}
		for _, menu := range menus {
			urls, err := deleteMenuTree(tx, menu.ID)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, urls...)
		}

		locRepo := repository.NewLocationRepository(tx)
		locs, err := locRepo.FindByRestaurant(id)
		if err != nil {
			return err
		}
		for _, loc := range locs {
			urls, err := deleteLocationTree(tx, loc.ID)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, urls...)
		}

		return restRepo.Delete(id)
	})
	if err != nil {
		return err
	}
	removeArtifacts(s.UploadDir, artifacts)
	return nil
}

// deleteMenuTree removes a menu with its categories, items, assignment rows,
// and menu-bound QR codes, returning the image URLs of the removed codes so
// callers can clean up the stored artifacts after commit. Shared by menu
// delete and the full-tenant cascade.
func deleteMenuTree(tx *gorm.DB, menuID uint) ([]string, error) {
	catRepo := repository.NewCategoryRepository(tx)
	cats, err := catRepo.FindByMenu(menuID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(cats))
	for _, cat := range cats {
		ids = append(ids, cat.ID)
	}
	if err := repository.NewItemRepository(tx).DeleteByCategories(ids); err != nil {
		return nil, err
	}
	if err := catRepo.DeleteByMenu(menuID); err != nil {
		return nil, err
	}
	if err := repository.NewLocationMenuRepository(tx).DeleteByMenu(menuID); err != nil {
		return nil, err
	}
	qrRepo := repository.NewQRCodeRepository(tx)
	codes, err := qrRepo.FindByMenu(menuID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(codes))
	for _, code := range codes {
		urls = append(urls, code.ImageURL)
	}
	if err := qrRepo.DeleteByMenu(menuID); err != nil {
		return nil, err
	}
	if err := repository.NewMenuRepository(tx).Delete(menuID); err != nil {
		return nil, err
	}
	return urls, nil
}

// deleteLocationTree removes a location with its assignment rows and QR
// codes, returning the image URLs of the removed codes so callers can clean
// up the stored artifacts after commit.
func deleteLocationTree(tx *gorm.DB, locationID uint) ([]string, error) {
	qrRepo := repository.NewQRCodeRepository(tx)
	codes, err := qrRepo.FindByLocation(locationID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(codes))
	for _, code := range codes {
		urls = append(urls, code.ImageURL)
	}
	if err := qrRepo.DeleteByLocation(locationID); err != nil {
		return nil, err
	}
	if err := repository.NewLocationMenuRepository(tx).DeleteByLocation(locationID); err != nil {
		return nil, err
	}
	if err := repository.NewLocationRepository(tx).Delete(locationID); err != nil {
		return nil, err
	}
	return urls, nil
}

// removeArtifacts deletes stored QR images once their rows are gone.
func removeArtifacts(uploadDir string, imageURLs []string) {
	for _, url := range imageURLs {
		_ = utils.RemoveFile(artifactPath(uploadDir, url))
	}
}
