package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/mailer"
	"github.com/usamaikram-xs-00008/menu-qr-gen/repository"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	DB      *gorm.DB
	Mailer  mailer.Mailer
	BaseURL string
}

func NewInvitationService(db *gorm.DB, m mailer.Mailer, baseURL string) *InvitationService {
	return &InvitationService{DB: db, Mailer: m, BaseURL: baseURL}
}

// InviteRestaurant creates an owner invitation. The restaurant itself is
// created when the invitation is accepted.
func (s *InvitationService) InviteRestaurant(inviterID uint, inviterRole entity.RoleID, email, restaurantName string) (*entity.Invitation, error) {
	if !inviterRole.Can(entity.CapInviteRestaurant) {
		return nil, ErrForbidden
	}
	if email == "" || restaurantName == "" {
		return nil, ErrValidation
	}
	return s.create(&entity.Invitation{
		Email:          strings.ToLower(email),
		RoleID:         entity.RoleOwner,
		CreatedByID:    inviterID,
		RestaurantName: restaurantName,
	})
}

// InviteStaff creates a staff invitation: a super admin invites platform
// staff, an owner invites staff bound to their restaurant.
func (s *InvitationService) InviteStaff(inviterID uint, inviterRole entity.RoleID, email string) (*entity.Invitation, error) {
	if !inviterRole.Can(entity.CapInviteStaff) {
		return nil, ErrForbidden
	}
	if email == "" {
		return nil, ErrValidation
	}
	staffRole, ok := inviterRole.StaffRole()
	if !ok {
		return nil, ErrForbidden
	}

	inv := &entity.Invitation{
		Email:       strings.ToLower(email),
		RoleID:      staffRole,
		CreatedByID: inviterID,
	}
	if staffRole == entity.RoleOwnerStaff {
		var rest entity.Restaurant
		err := s.DB.Where("owner_id = ?", inviterID).First(&rest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: owner has no restaurant", ErrValidation)
		}
		if err != nil {
			return nil, err
		}
		inv.RestaurantID = &rest.ID
	}
	return s.create(inv)
}

// create inserts the invitation and sends the email inside one transaction,
// so a failed send leaves no dangling token.
func (s *InvitationService) create(inv *entity.Invitation) (*entity.Invitation, error) {
	token, err := utils.NewInviteToken()
	if err != nil {
		return nil, err
	}
	inv.Token = token
	inv.ExpiresAt = time.Now().Add(invitationTTL)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewInvitationRepository(tx).Create(inv); err != nil {
			return err
		}
		link := fmt.Sprintf("%s/register?token=%s", s.BaseURL, inv.Token)
		return s.Mailer.Send(mailer.Message{
			To:      inv.Email,
			Subject: "You have been invited",
			Body:    "Follow this link to complete your registration: " + link,
		})
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

type AcceptInvitationInput struct {
	Token     string
	Password  string
	FirstName string
	LastName  string
}

// Accept redeems a token: creates the account with the invited role, marks
// the token used, and for owner invitations creates the restaurant.
func (s *InvitationService) Accept(in AcceptInvitationInput) (*entity.User, error) {
	if in.Token == "" || len(in.Password) < 6 {
		return nil, ErrValidation
	}

	var user *entity.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		invRepo := repository.NewInvitationRepository(tx)
		inv, err := invRepo.FindByToken(in.Token)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if inv.Used {
			return fmt.Errorf("%w: invitation already used", ErrValidation)
		}
		if time.Now().After(inv.ExpiresAt) {
			return fmt.Errorf("%w: invitation expired", ErrValidation)
		}

		userRepo := repository.NewUserRepository(tx)
		if taken, err := userRepo.EmailExists(inv.Email); err != nil {
			return err
		} else if taken {
			return fmt.Errorf("%w: email already registered", ErrConflict)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = &entity.User{
			Email:        inv.Email,
			Password:     string(hash),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			RoleID:       inv.RoleID,
			CreatedByID:  &inv.CreatedByID,
			RestaurantID: inv.RestaurantID,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}

		if inv.RoleID == entity.RoleOwner {
			if _, err := CreateRestaurantForOwner(tx, user.ID, inv.RestaurantName, ""); err != nil {
				return err
			}
		}

		return invRepo.MarkUsed(inv.ID)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
