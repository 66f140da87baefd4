package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usamaikram-xs-00008/menu-qr-gen/entity"
	"github.com/usamaikram-xs-00008/menu-qr-gen/utils"
)

func TestRegisterOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)

	user, rest, err := svc.RegisterOwner(RegisterOwnerInput{
		Email: "Owner@Example.com", Password: "secret1",
		FirstName: "Ada", LastName: "Lau", RestaurantName: "Jade Garden",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, entity.RoleOwner, user.RoleID)
	assert.NotEqual(t, "secret1", user.Password)
	assert.Equal(t, user.ID, rest.OwnerID)
	assert.Equal(t, "jade-garden", rest.Slug)

	t.Run("duplicate email conflicts and leaves no restaurant", func(t *testing.T) {
		_, _, err := svc.RegisterOwner(RegisterOwnerInput{
			Email: "owner@example.com", Password: "secret1", RestaurantName: "Other",
		})
		assert.True(t, errors.Is(err, ErrConflict))

		var count int64
		db.Model(&entity.Restaurant{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("validation", func(t *testing.T) {
		_, _, err := svc.RegisterOwner(RegisterOwnerInput{Email: "a@b.c", Password: "abc", RestaurantName: "X"})
		assert.True(t, errors.Is(err, ErrValidation))
		_, _, err = svc.RegisterOwner(RegisterOwnerInput{Email: "a@b.c", Password: "secret1"})
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", time.Hour)

	registered, _, err := svc.RegisterOwner(RegisterOwnerInput{
		Email: "owner@example.com", Password: "secret1", RestaurantName: "Jade Garden",
	})
	require.NoError(t, err)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		user, token, err := svc.Login("owner@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		claims, err := utils.ParseToken(token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, entity.RoleOwner, claims.RoleID)
	})

	t.Run("email is case insensitive", func(t *testing.T) {
		_, _, err := svc.Login("OWNER@example.com", "secret1")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("owner@example.com", "wrong")
		assert.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login("ghost@example.com", "secret1")
		assert.True(t, errors.Is(err, ErrForbidden))
	})
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(1, entity.RoleOwner, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "secret-b")
	assert.Error(t, err)
}
