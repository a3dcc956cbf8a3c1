package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands_mock.go -package=commandsmock field-booking/internal/usecase/commands AuthCommands,BookingCommands,FieldCommands,ReviewCommands,UserCommands

import (
	"context"
	"log/slog"
	"time"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/patch"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = shared.ErrBookingNotFound

type CreateBookingRequest struct {
	FieldID  uuid.UUID
	Date     string
	TimeSlot string
	// UserID books on behalf of another user; nil books for the actor.
	UserID *uuid.UUID
}

// UpdateBookingRequest is a partial update; nil fields are left unchanged.
type UpdateBookingRequest struct {
	Date     *string
	TimeSlot *string
	Status   *string
}

type BookingCommands interface {
	Create(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor authz.Actor, bookingID uuid.UUID, req UpdateBookingRequest) error
	Confirm(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error
	Cancel(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error
	Delete(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	rules     *booking.Rules
	clock     clock.Clock
	publisher shared.EventPublisher
	logger    *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, rules *booking.Rules, clk clock.Clock, publisher shared.EventPublisher, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		rules:     rules,
		clock:     clk,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (uuid.UUID, error) {
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return uuid.Nil, err
	}
	slot, err := booking.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		return uuid.Nil, err
	}

	ownerID := actor.ID
	if req.UserID != nil && *req.UserID != actor.ID {
		if err := authz.Require(actor, authz.BookForOthers, uuid.Nil); err != nil {
			return uuid.Nil, err
		}
		ownerID = *req.UserID
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, ownerID); err != nil {
			return shared.NotFoundAs(err, shared.ErrUserNotFound)
		}
		// inactive fields remain bookable
		if _, err := tx.Fields().FindByID(ctx, req.FieldID); err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}

		if err := uc.rules.CheckDate(date, uc.clock.Now()); err != nil {
			return err
		}

		bookings := tx.Bookings()
		if err := bookings.LockUserDay(ctx, ownerID, date); err != nil {
			return err
		}
		count, err := bookings.CountActiveByUserAndDate(ctx, ownerID, date)
		if err != nil {
			return err
		}
		if err := uc.rules.CheckQuota(count); err != nil {
			return err
		}

		taken, err := bookings.ExistsActiveSlot(ctx, req.FieldID, date, slot, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return booking.ErrSlotConflict
		}

		b := booking.NewBooking(ownerID, req.FieldID, date, slot)
		if err := bookings.Create(ctx, b); err != nil {
			return asSlotConflict(err)
		}
		created = b
		tx.AfterCommit(func(ctx context.Context) {
			uc.publish(ctx, shared.BookingCreated, b)
		})
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID(), nil
}

func (uc *bookingCommandsImpl) Update(ctx context.Context, actor authz.Actor, bookingID uuid.UUID, req UpdateBookingRequest) error {
	move, err := parseMove(req)
	if err != nil {
		return err
	}
	var target booking.Status
	if req.Status != nil {
		if target, err = booking.ParseStatus(*req.Status); err != nil {
			return err
		}
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		if err := authz.Require(actor, authz.ModifyBooking, b.UserID()); err != nil {
			return err
		}

		statusChanged := false
		if req.Status != nil {
			if target == booking.StatusConfirmed && b.Status() != booking.StatusConfirmed {
				if err := authz.Require(actor, authz.ConfirmBooking, uuid.Nil); err != nil {
					return err
				}
			}
			statusChanged, err = b.PlanTransition(target, authz.Can(actor, authz.CancelConfirmed, uuid.Nil))
			if err != nil {
				return err
			}
			if statusChanged && target == booking.StatusCancelled {
				if err := uc.rules.CheckCancelWindow(b.Date(), b.TimeSlot(), uc.clock.Now()); err != nil {
					return err
				}
			}
		}

		// date window and quota are not re-checked on a move
		moved := move.apply(b)
		if statusChanged {
			if _, err := b.TransitionTo(target, true); err != nil {
				return err
			}
		}

		if moved && b.Status() != booking.StatusCancelled {
			taken, err := tx.Bookings().ExistsActiveSlot(ctx, b.FieldID(), b.Date(), b.TimeSlot(), b.ID())
			if err != nil {
				return err
			}
			if taken {
				return booking.ErrSlotConflict
			}
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return asSlotConflict(err)
		}
		if statusChanged {
			tx.AfterCommit(func(ctx context.Context) {
				uc.publish(ctx, eventFor(target), b)
			})
		}
		return nil
	})
}

func (uc *bookingCommandsImpl) Confirm(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error {
	if err := authz.Require(actor, authz.ConfirmBooking, uuid.Nil); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		changed, err := b.TransitionTo(booking.StatusConfirmed, false)
		if err != nil || !changed {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		tx.AfterCommit(func(ctx context.Context) {
			uc.publish(ctx, shared.BookingConfirmed, b)
		})
		return nil
	})
}

// Cancel checks the status before ownership, so a confirmed booking reports
// AlreadyConfirmed even to callers who do not own it.
func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		changed, err := b.PlanTransition(booking.StatusCancelled, authz.Can(actor, authz.CancelConfirmed, uuid.Nil))
		if err != nil {
			return err
		}
		if err := authz.Require(actor, authz.CancelBooking, b.UserID()); err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := uc.rules.CheckCancelWindow(b.Date(), b.TimeSlot(), uc.clock.Now()); err != nil {
			return err
		}

		if _, err := b.TransitionTo(booking.StatusCancelled, true); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		tx.AfterCommit(func(ctx context.Context) {
			uc.publish(ctx, shared.BookingCancelled, b)
		})
		return nil
	})
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) error {
	if err := authz.Require(actor, authz.DeleteBooking, uuid.Nil); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, bookingID); err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		return nil
	})
}

func (uc *bookingCommandsImpl) publish(ctx context.Context, typ shared.BookingEventType, b *booking.Booking) {
	event := shared.BookingEvent{
		Type:       typ,
		BookingID:  b.ID(),
		UserID:     b.UserID(),
		FieldID:    b.FieldID(),
		Date:       booking.FormatDate(b.Date()),
		TimeSlot:   b.TimeSlot().String(),
		Status:     b.Status().String(),
		OccurredAt: uc.clock.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish booking event",
			"type", string(typ),
			"booking_id", b.ID().String(),
			"error", err.Error())
	}
}

type move struct {
	date *time.Time
	slot *booking.TimeSlot
}

func parseMove(req UpdateBookingRequest) (move, error) {
	var m move
	if req.Date != nil {
		d, err := booking.ParseDate(*req.Date)
		if err != nil {
			return m, err
		}
		m.date = &d
	}
	if req.TimeSlot != nil {
		s, err := booking.ParseTimeSlot(*req.TimeSlot)
		if err != nil {
			return m, err
		}
		m.slot = &s
	}
	return m, nil
}

// apply reschedules b and reports whether its date or slot changed.
func (m move) apply(b *booking.Booking) bool {
	date := patch.Coalesce(m.date, b.Date())
	slot := patch.Coalesce(m.slot, b.TimeSlot())
	if date.Equal(b.Date()) && slot == b.TimeSlot() {
		return false
	}
	b.Reschedule(date, slot)
	return true
}

func eventFor(status booking.Status) shared.BookingEventType {
	if status == booking.StatusConfirmed {
		return shared.BookingConfirmed
	}
	return shared.BookingCancelled
}

// the partial unique index on live slots is the only unique constraint a
// booking write can hit
func asSlotConflict(err error) error {
	if errs.Is(err, errs.ErrDuplicateRecord) {
		return errs.Mark(err, booking.ErrSlotConflict)
	}
	return err
}
