//go:build unit

package authz_test

import (
	"testing"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	admin := authz.NewActor(uuid.New(), user.RoleAdmin)
	manager := authz.NewActor(other, user.RoleManager)
	ownerUser := authz.NewActor(owner, user.RoleUser)
	stranger := authz.NewActor(other, user.RoleUser)

	cases := []struct {
		name       string
		actor      authz.Actor
		capability authz.Capability
		ownerID    uuid.UUID
		want       bool
	}{
		{"admin confirms", admin, authz.ConfirmBooking, owner, true},
		{"owner cannot confirm", ownerUser, authz.ConfirmBooking, owner, false},
		{"manager cannot confirm", manager, authz.ConfirmBooking, owner, false},
		{"owner cancels", ownerUser, authz.CancelBooking, owner, true},
		{"stranger cannot cancel", stranger, authz.CancelBooking, owner, false},
		{"admin cancels others", admin, authz.CancelBooking, owner, true},
		{"owner cannot cancel confirmed", ownerUser, authz.CancelConfirmed, owner, false},
		{"admin cancels confirmed", admin, authz.CancelConfirmed, owner, true},
		{"owner modifies", ownerUser, authz.ModifyBooking, owner, true},
		{"owner reads", ownerUser, authz.ReadBooking, owner, true},
		{"stranger cannot read", stranger, authz.ReadBooking, owner, false},
		{"user cannot list all", ownerUser, authz.ListAllBookings, uuid.Nil, false},
		{"admin lists all", admin, authz.ListAllBookings, uuid.Nil, true},
		{"user cannot delete own", ownerUser, authz.DeleteBooking, owner, false},
		{"user cannot book for others", ownerUser, authz.BookForOthers, uuid.Nil, false},
		{"manager cannot manage fields", manager, authz.ManageFields, uuid.Nil, false},
		{"admin manages users", admin, authz.ManageUsers, uuid.Nil, true},
		{"owner edits review", ownerUser, authz.ModifyReview, owner, true},
		{"admin cannot edit review", admin, authz.ModifyReview, owner, false},
		{"stranger cannot delete review", stranger, authz.DeleteReview, owner, false},
		{"admin deletes review", admin, authz.DeleteReview, owner, true},
		{"nil owner never matches", authz.NewActor(uuid.Nil, user.RoleUser), authz.ReadBooking, uuid.Nil, false},
		{"unknown capability", admin, authz.Capability("fly"), uuid.Nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, authz.Can(c.actor, c.capability, c.ownerID))
		})
	}
}

func TestRequire(t *testing.T) {
	actor := authz.NewActor(uuid.New(), user.RoleUser)

	err := authz.Require(actor, authz.ConfirmBooking, uuid.Nil)
	assert.True(t, errs.Is(err, authz.ErrForbidden))

	assert.NoError(t, authz.Require(actor, authz.ReadBooking, actor.ID))
}
