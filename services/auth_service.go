package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterOwnerInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	RestaurantName string
}

// RegisterOwner is the self-serve sign-up: one transaction creates the
// owner account and their restaurant.
func (s *AuthService) RegisterOwner(in RegisterOwnerInput) (*entity.User, *entity.Restaurant, error) {
	if in.Email == "" || len(in.Password) < 6 || in.RestaurantName == "" {
		return nil, nil, ErrValidation
	}

	var (
		user *entity.User
		rest *entity.Restaurant
	)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		if taken, err := userRepo.EmailExists(strings.ToLower(in.Email)); err != nil {
			return err
		} else if taken {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = &entity.User{
			Email:     strings.ToLower(in.Email),
			Password:  string(hash),
			FirstName: in.FirstName,
			LastName:  in.LastName,
			RoleID:    entity.RoleOwner,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}

		rest, err = CreateRestaurantForOwner(tx, user.ID, in.RestaurantName, "")
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, rest, nil
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	user, err := repository.NewUserRepository(s.DB).FindByEmail(strings.ToLower(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrForbidden
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrForbidden
	}

	token, err := utils.GenerateToken(user.ID, user.RoleID, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := repository.NewUserRepository(s.DB).FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}
