package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignMenu(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	loc := seedLocation(t, db, rest.ID, "Downtown", "downtown")
	menu := seedMenu(t, db, rest.ID, "Lunch", "lunch", 1)
	svc := NewLocationMenuService(db)

	row, err := svc.Assign(loc.ID, menu.ID)
	require.NoError(t, err)
	assert.True(t, row.IsActive)

	t.Run("duplicate active pair conflicts", func(t *testing.T) {
		_, err := svc.Assign(loc.ID, menu.ID)
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("inactive pair is reactivated", func(t *testing.T) {
		_, err := svc.Toggle(loc.ID, menu.ID, false)
		require.NoError(t, err)

		again, err := svc.Assign(loc.ID, menu.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, again.ID)
		assert.True(t, again.IsActive)
	})
}

func TestAssignRejectsCrossRestaurantMenu(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	restA := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	restB := seedRestaurant(t, db, owner.ID, "Golden Bowl", "golden-bowl")
	loc := seedLocation(t, db, restA.ID, "Downtown", "downtown")
	foreign := seedMenu(t, db, restB.ID, "Lunch", "lunch", 1)
	svc := NewLocationMenuService(db)

	_, err := svc.Assign(loc.ID, foreign.ID)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestAssignMissingRows(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	loc := seedLocation(t, db, rest.ID, "Downtown", "downtown")
	menu := seedMenu(t, db, rest.ID, "Lunch", "lunch", 1)
	svc := NewLocationMenuService(db)

	_, err := svc.Assign(999, menu.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = svc.Assign(loc.ID, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRemoveAssignment(t *testing.T) {
	db := newTestDB(t)
	owner := seedOwner(t, db, "owner@example.com")
	rest := seedRestaurant(t, db, owner.ID, "Jade Garden", "jade-garden")
	loc := seedLocation(t, db, rest.ID, "Downtown", "downtown")
	menu := seedMenu(t, db, rest.ID, "Lunch", "lunch", 1)
	svc := NewLocationMenuService(db)

	_, err := svc.Assign(loc.ID, menu.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(loc.ID, menu.ID))

	assert.True(t, errors.Is(svc.Remove(loc.ID, menu.ID), ErrNotFound))

	// detaching frees the pair for a fresh assignment
	_, err = svc.Assign(loc.ID, menu.ID)
	assert.NoError(t, err)
}
