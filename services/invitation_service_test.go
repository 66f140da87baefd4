package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/pkg/mailer"
)

// recordingMailer captures sent messages; failingMailer rejects every send.
type recordingMailer struct {
	sent []mailer.Message
}

func (m *recordingMailer) Send(msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type failingMailer struct{}

func (failingMailer) Send(mailer.Message) error { return errors.New("smtp unreachable") }

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestInviteRestaurant(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingMailer{}
	svc := NewInvitationService(db, mail, "http://localhost:8000")
	admin := &entity.User{Email: "admin@example.com", Password: "x", RoleID: entity.RoleSuperAdmin}
	require.NoError(t, db.Create(admin).Error)

	inv, err := svc.InviteRestaurant(admin.ID, entity.RoleSuperAdmin, "New.Owner@Example.com", "Jade Garden")
	require.NoError(t, err)

	assert.Equal(t, "new.owner@example.com", inv.Email)
	assert.Equal(t, entity.RoleOwner, inv.RoleID)
	assert.Equal(t, "Jade Garden", inv.RestaurantName)
	assert.Regexp(t, tokenPattern, inv.Token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), inv.ExpiresAt, time.Minute)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "new.owner@example.com", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Body, "http://localhost:8000/register?token="+inv.Token)
}

func TestInviteRestaurantForbiddenForNonAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(db, &recordingMailer{}, "http://localhost:8000")

	for _, role := range []entity.RoleID{entity.RoleOwner, entity.RoleSuperAdminStaff, entity.RoleOwnerStaff} {
		_, err := svc.InviteRestaurant(1, role, "x@example.com", "X")
		assert.True(t, errors.Is(err, ErrForbidden), "role %d", role)
	}
}

func TestInviteStaffRoleMapping(t *testing.T) {
	db := newTestDB(t)
	mail := &recordingMailer{}
	svc := NewInvitationService(db, mail, "http://localhost:8000")

	admin := &entity.User{Email: "admin@example.com", Password: "x", RoleID: entity.RoleSuperAdmin}
	require.NoError(t, db.Create(admin).Error)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")

	t.Run("super admin invites platform staff", func(t *testing.T) {
		inv, err := svc.InviteStaff(admin.ID, entity.RoleSuperAdmin, "staff@example.com")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleSuperAdminStaff, inv.RoleID)
		assert.Nil(t, inv.RestaurantID)
	})

	t.Run("owner invites staff bound to their restaurant", func(t *testing.T) {
		inv, err := svc.InviteStaff(owner.ID, entity.RoleOwner, "waiter@example.com")
		require.NoError(t, err)
		assert.Equal(t, entity.RoleOwnerStaff, inv.RoleID)
		require.NotNil(t, inv.RestaurantID)
		assert.Equal(t, rest.ID, *inv.RestaurantID)
	})

	t.Run("owner without restaurant cannot invite", func(t *testing.T) {
		bare := seedOwner(t, db, "bare@example.com")
		_, err := svc.InviteStaff(bare.ID, entity.RoleOwner, "x@example.com")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("staff cannot invite", func(t *testing.T) {
		_, err := svc.InviteStaff(1, entity.RoleOwnerStaff, "x@example.com")
		assert.True(t, errors.Is(err, ErrForbidden))
	})
}

func TestInviteRollsBackWhenSendFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(db, failingMailer{}, "http://localhost:8000")
	admin := &entity.User{Email: "admin@example.com", Password: "x", RoleID: entity.RoleSuperAdmin}
	require.NoError(t, db.Create(admin).Error)

	_, err := svc.InviteRestaurant(admin.ID, entity.RoleSuperAdmin, "x@example.com", "X")
	require.Error(t, err)

	var count int64
	db.Model(&entity.Invitation{}).Count(&count)
	assert.Zero(t, count)
}

func TestAcceptOwnerInvitation(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(db, &recordingMailer{}, "http://localhost:8000")
	admin := &entity.User{Email: "admin@example.com", Password: "x", RoleID: entity.RoleSuperAdmin}
	require.NoError(t, db.Create(admin).Error)

	inv, err := svc.InviteRestaurant(admin.ID, entity.RoleSuperAdmin, "owner@example.com", "Jade Garden")
	require.NoError(t, err)

	user, err := svc.Accept(AcceptInvitationInput{
		Token: inv.Token, Password: "secret1", FirstName: "Ada", LastName: "Lau",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, entity.RoleOwner, user.RoleID)
	require.NotNil(t, user.CreatedByID)
	assert.Equal(t, admin.ID, *user.CreatedByID)

	var rest entity.Restaurant
	require.NoError(t, db.Where("owner_id = ?", user.ID).First(&rest).Error)
	assert.Equal(t, "Jade Garden", rest.Name)
	assert.Equal(t, "jade-garden", rest.Slug)

	t.Run("token is single use", func(t *testing.T) {
		_, err := svc.Accept(AcceptInvitationInput{
			Token: inv.Token, Password: "secret1", FirstName: "B", LastName: "C",
		})
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestAcceptStaffInvitation(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(db, &recordingMailer{}, "http://localhost:8000")
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")

	inv, err := svc.InviteStaff(owner.ID, entity.RoleOwner, "waiter@example.com")
	require.NoError(t, err)

	user, err := svc.Accept(AcceptInvitationInput{
		Token: inv.Token, Password: "secret1", FirstName: "W", LastName: "T",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwnerStaff, user.RoleID)
	require.NotNil(t, user.RestaurantID)
	assert.Equal(t, rest.ID, *user.RestaurantID)
}

func TestAcceptRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(db, &recordingMailer{}, "http://localhost:8000")
	admin := &entity.User{Email: "admin@example.com", Password: "x", RoleID: entity.RoleSuperAdmin}
	require.NoError(t, db.Create(admin).Error)

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Accept(AcceptInvitationInput{Token: "deadbeef", Password: "secret1"})
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Accept(AcceptInvitationInput{Token: "deadbeef", Password: "abc"})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("expired token", func(t *testing.T) {
		inv, err := svc.InviteRestaurant(admin.ID, entity.RoleSuperAdmin, "late@example.com", "Late Cafe")
		require.NoError(t, err)
		require.NoError(t, db.Model(inv).Update("expires_at", time.Now().Add(-time.Hour)).Error)

		_, err = svc.Accept(AcceptInvitationInput{Token: inv.Token, Password: "secret1"})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("email already registered", func(t *testing.T) {
		inv, err := svc.InviteRestaurant(admin.ID, entity.RoleSuperAdmin, "admin@example.com", "Dup Cafe")
		require.NoError(t, err)

		_, err = svc.Accept(AcceptInvitationInput{Token: inv.Token, Password: "secret1"})
		assert.True(t, errors.Is(err, ErrConflict))
	})
}
