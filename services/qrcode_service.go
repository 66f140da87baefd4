package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
	"gorm.io/gorm"
)

const qrImageSize = 256

type QRCodeService struct {
	DB        *gorm.DB
	BaseURL   string
	UploadDir string
}

func NewQRCodeService(db *gorm.DB, baseURL, uploadDir string) *QRCodeService {
	return &QRCodeService{DB: db, BaseURL: baseURL, UploadDir: uploadDir}
}

// TargetPath builds the public path a QR code points at. It depends only on
// the slugs, never on image rendering.
func TargetPath(restaurantSlug, locationSlug, menuSlug string) string {
	if menuSlug != "" {
		return fmt.Sprintf("/menus/%s/%s/%s", restaurantSlug, locationSlug, menuSlug)
	}
	return fmt.Sprintf("/menus/%s/%s", restaurantSlug, locationSlug)
}

func (s *QRCodeService) ListByLocation(locationID uint) ([]entity.QRCode, error) {
	return repository.NewQRCodeRepository(s.DB).FindByLocation(locationID)
}

func (s *QRCodeService) Get(id uint) (*entity.QRCode, error) {
	code, err := repository.NewQRCodeRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return code, err
}

// Create binds a QR code to a location and optionally one of its menus. A
// bound menu must be actively assigned to the location. One code per
// (location, menu-or-none) tuple; duplicates are a conflict.
func (s *QRCodeService) Create(locationID uint, menuID *uint) (*entity.QRCode, error) {
	var code *entity.QRCode
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		loc, err := repository.NewLocationRepository(tx).FindByID(locationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		rest, err := repository.NewRestaurantRepository(tx).FindByID(loc.RestaurantID)
		if err != nil {
			return err
		}

		menuSlug := ""
		if menuID != nil {
			menu, err := repository.NewMenuRepository(tx).FindByID(*menuID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if menu.RestaurantID != loc.RestaurantID {
				return fmt.Errorf("%w: menu belongs to another restaurant", ErrValidation)
			}
			assigned, err := repository.NewLocationMenuRepository(tx).ActivePairExists(locationID, *menuID)
			if err != nil {
				return err
			}
			if !assigned {
				return fmt.Errorf("%w: menu is not assigned to this location", ErrValidation)
			}
			menuSlug = menu.Slug
		}

		repo := repository.NewQRCodeRepository(tx)
		taken, err := repo.BindingExists(locationID, menuID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: a QR code for this target already exists", ErrConflict)
		}

		target := s.BaseURL + TargetPath(rest.Slug, loc.Slug, menuSlug)
		png, err := qrcode.Encode(target, qrcode.Medium, qrImageSize)
		if err != nil {
			return err
		}

		// Insert the row before touching disk. A failed insert then leaves
		// no stray image, and a failed write rolls the row back.
		filename := utils.NewImageName(".png")
		code = &entity.QRCode{
			LocationID: locationID,
			MenuID:     menuID,
			TargetURL:  target,
			ImageURL:   "/uploads/qrcodes/" + filename,
			IsActive:   true,
		}
		if err := repo.Create(code); err != nil {
			return err
		}
		return utils.SavePNG(png, filepath.Join(s.UploadDir, "qrcodes"), filename)
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

// Toggle flips the active flag. The stored image stays.
func (s *QRCodeService) Toggle(id uint, active bool) (*entity.QRCode, error) {
	repo := repository.NewQRCodeRepository(s.DB)
	code, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	code.IsActive = active
	if err := repo.Update(code); err != nil {
		return nil, err
	}
	return code, nil
}

// Delete is terminal: the row and the rendered artifact both go.
func (s *QRCodeService) Delete(id uint) error {
	repo := repository.NewQRCodeRepository(s.DB)
	code, err := repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := repo.Delete(id); err != nil {
		return err
	}
	return utils.RemoveFile(artifactPath(s.UploadDir, code.ImageURL))
}

// RenderRestaurantQR serves GET /api/qr/:id for both lookup modes: by row
// id (authenticated, ownership checked by the caller) and by slug (public,
// active restaurants only). It renders a fresh PNG for the restaurant's
// legacy single-segment URL and returns it as a data URL.
func (s *QRCodeService) RenderRestaurantQR(rest *entity.Restaurant) (dataURL, menuURL string, err error) {
	menuURL = s.BaseURL + "/" + rest.Slug
	png, err := qrcode.Encode(menuURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", "", err
	}
	dataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return dataURL, menuURL, nil
}

func (s *QRCodeService) RestaurantByID(id uint) (*entity.Restaurant, error) {
	rest, err := repository.NewRestaurantRepository(s.DB).FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return rest, err
}

func (s *QRCodeService) ActiveRestaurantBySlug(slug string) (*entity.Restaurant, error) {
	rest, err := repository.NewRestaurantRepository(s.DB).FindActiveBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return rest, err
}

// artifactPath maps a stored image URL back to its file path.
func artifactPath(uploadDir, imageURL string) string {
	rel := strings.TrimPrefix(imageURL, "/uploads/")
	return filepath.Join(uploadDir, filepath.FromSlash(rel))
}
