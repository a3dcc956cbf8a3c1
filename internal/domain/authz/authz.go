package authz

import (
	"field-booking/internal/domain/user"
	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrForbidden = errs.New("insufficient permissions for this operation")

type Capability string

const (
	ConfirmBooking  Capability = "confirm_booking"
	CancelBooking   Capability = "cancel_booking"
	CancelConfirmed Capability = "cancel_confirmed"
	ModifyBooking   Capability = "modify_booking"
	ReadBooking     Capability = "read_booking"
	ListAllBookings Capability = "list_all_bookings"
	DeleteBooking   Capability = "delete_booking"
	BookForOthers   Capability = "book_for_others"
	ManageFields    Capability = "manage_fields"
	ManageUsers     Capability = "manage_users"
	ModifyReview    Capability = "modify_review"
	DeleteReview    Capability = "delete_review"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type rule struct {
	// roles granted the capability regardless of ownership
	roles map[user.Role]bool
	// owners of the resource are granted it as well
	owner bool
}

var adminOnly = map[user.Role]bool{user.RoleAdmin: true}

// manager carries no rule of its own and falls through to the owner checks.
var table = map[Capability]rule{
	ConfirmBooking:  {roles: adminOnly},
	CancelBooking:   {roles: adminOnly, owner: true},
	CancelConfirmed: {roles: adminOnly},
	ModifyBooking:   {roles: adminOnly, owner: true},
	ReadBooking:     {roles: adminOnly, owner: true},
	ListAllBookings: {roles: adminOnly},
	DeleteBooking:   {roles: adminOnly},
	BookForOthers:   {roles: adminOnly},
	ManageFields:    {roles: adminOnly},
	ManageUsers:     {roles: adminOnly},
	ModifyReview:    {owner: true},
	DeleteReview:    {roles: adminOnly, owner: true},
}

// Can reports whether actor holds capability. ownerID is the owner of the
// target resource, uuid.Nil when the capability is not ownership based.
func Can(actor Actor, capability Capability, ownerID uuid.UUID) bool {
	r, ok := table[capability]
	if !ok {
		return false
	}
	if r.roles[actor.Role] {
		return true
	}
	return r.owner && ownerID != uuid.Nil && actor.ID == ownerID
}

// Require is Can returning ErrForbidden on denial.
func Require(actor Actor, capability Capability, ownerID uuid.UUID) error {
	if !Can(actor, capability, ownerID) {
		return errs.Wrapf(ErrForbidden, "%s denied for role %s", capability, actor.Role)
	}
	return nil
}
