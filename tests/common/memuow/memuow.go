//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for use case tests.
// A failed Within restores the state it started from, and after-commit
// hooks only run on success.
package memuow

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/field"
	"field-booking/internal/domain/review"
	"field-booking/internal/domain/user"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*user.User
	fields   map[uuid.UUID]*field.Field
	bookings map[uuid.UUID]*booking.Booking
	reviews  map[uuid.UUID]*review.Review
	stats    map[uuid.UUID]RatingStats

	// Commits counts successful Within calls.
	Commits int
}

func New() *Store {
	return &Store{
		users:    map[uuid.UUID]*user.User{},
		fields:   map[uuid.UUID]*field.Field{},
		bookings: map[uuid.UUID]*booking.Booking{},
		reviews:  map[uuid.UUID]*review.Review{},
		stats:    map[uuid.UUID]RatingStats{},
	}
}

// RatingStats is what RecalcFieldStats last stored for a field.
type RatingStats struct {
	Count   int
	Average float64
}

func (s *Store) PutUser(u *user.User)          { s.users[u.ID()] = cloneUser(u) }
func (s *Store) PutField(f *field.Field)       { s.fields[f.ID()] = cloneField(f) }
func (s *Store) PutBooking(b *booking.Booking) { s.bookings[b.ID()] = cloneBooking(b) }
func (s *Store) PutReview(rv *review.Review)   { s.reviews[rv.ID()] = cloneReview(rv) }

func (s *Store) User(id uuid.UUID) (*user.User, bool) {
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

func (s *Store) Field(id uuid.UUID) (*field.Field, bool) {
	f, ok := s.fields[id]
	if !ok {
		return nil, false
	}
	return cloneField(f), true
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) Review(id uuid.UUID) (*review.Review, bool) {
	rv, ok := s.reviews[id]
	if !ok {
		return nil, false
	}
	return cloneReview(rv), true
}

func (s *Store) Stats(fieldID uuid.UUID) (RatingStats, bool) {
	st, ok := s.stats[fieldID]
	return st, ok
}

func (s *Store) BookingCount() int { return len(s.bookings) }
func (s *Store) ReviewCount() int  { return len(s.reviews) }

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	users, fields, bookings := maps.Clone(s.users), maps.Clone(s.fields), maps.Clone(s.bookings)
	reviews, stats := maps.Clone(s.reviews), maps.Clone(s.stats)
	tx := &memTx{store: s}
	err := fn(ctx, tx)
	if err != nil {
		s.users, s.fields, s.bookings = users, fields, bookings
		s.reviews, s.stats = reviews, stats
		s.mu.Unlock()
		return err
	}
	s.Commits++
	s.mu.Unlock()

	for _, hook := range tx.hooks {
		hook(ctx)
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

var notFound = errs.Mark(errs.New("no rows in result set"), errs.ErrRecordNotFound)

func duplicate(constraint string) error {
	return errs.Mark(errs.New("unique violation on "+constraint), errs.ErrDuplicateRecord)
}

type memTx struct {
	store *Store
	hooks []func(ctx context.Context)
}

func (t *memTx) Users() shared.UserRepository       { return userRepo{t.store} }
func (t *memTx) Fields() shared.FieldRepository     { return fieldRepo{t.store} }
func (t *memTx) Bookings() shared.BookingRepository { return bookingRepo{t.store} }
func (t *memTx) Reviews() shared.ReviewRepository   { return reviewRepo{t.store} }
func (t *memTx) DB() sqlc.DBTX                     { return nil }

func (t *memTx) AfterCommit(fn func(ctx context.Context)) {
	t.hooks = append(t.hooks, fn)
}

type userRepo struct{ s *Store }

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.User(id)
	if !ok {
		return nil, notFound
	}
	return u, nil
}

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email().Value(), email.Value()) {
			return cloneUser(u), nil
		}
	}
	return nil, notFound
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if r.emailTaken(u) {
		return duplicate("users_email_key")
	}
	r.s.users[u.ID()] = cloneUser(u)
	return nil
}

func (r userRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.s.users[u.ID()]; !ok {
		return notFound
	}
	if r.emailTaken(u) {
		return duplicate("users_email_key")
	}
	r.s.users[u.ID()] = cloneUser(u)
	return nil
}

// Delete cascades to the user's bookings and reviews.
func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.users[id]; !ok {
		return notFound
	}
	delete(r.s.users, id)
	for bid, b := range r.s.bookings {
		if b.UserID() == id {
			delete(r.s.bookings, bid)
		}
	}
	for rid, rv := range r.s.reviews {
		if rv.UserID() == id {
			delete(r.s.reviews, rid)
		}
	}
	return nil
}

func (r userRepo) emailTaken(u *user.User) bool {
	for id, other := range r.s.users {
		if id != u.ID() && strings.EqualFold(other.Email().Value(), u.Email().Value()) {
			return true
		}
	}
	return false
}

type fieldRepo struct{ s *Store }

func (r fieldRepo) FindByID(_ context.Context, id uuid.UUID) (*field.Field, error) {
	f, ok := r.s.Field(id)
	if !ok {
		return nil, notFound
	}
	return f, nil
}

func (r fieldRepo) Create(_ context.Context, f *field.Field) error {
	r.s.fields[f.ID()] = cloneField(f)
	return nil
}

func (r fieldRepo) Update(_ context.Context, f *field.Field) error {
	if _, ok := r.s.fields[f.ID()]; !ok {
		return notFound
	}
	r.s.fields[f.ID()] = cloneField(f)
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.Booking(id)
	if !ok {
		return nil, notFound
	}
	return b, nil
}

func (r bookingRepo) LockUserDay(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func (r bookingRepo) CountActiveByUserAndDate(_ context.Context, userID uuid.UUID, date time.Time) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.UserID() == userID && b.Date().Equal(date) && b.Status() != booking.StatusCancelled {
			n++
		}
	}
	return n, nil
}

func (r bookingRepo) ExistsActiveSlot(_ context.Context, fieldID uuid.UUID, date time.Time, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	return r.slotTaken(fieldID, date, slot, excludeID), nil
}

func (r bookingRepo) CountConfirmedBefore(_ context.Context, userID, fieldID uuid.UUID, before time.Time) (int, error) {
	n := 0
	for _, b := range r.s.bookings {
		if b.UserID() == userID && b.FieldID() == fieldID && b.Status() == booking.StatusConfirmed && b.Date().Before(before) {
			n++
		}
	}
	return n, nil
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.users[b.UserID()]; !ok {
		return errs.Mark(errs.New("foreign key violation"), errs.ErrRecordReferenced)
	}
	if r.slotTaken(b.FieldID(), b.Date(), b.TimeSlot(), b.ID()) {
		return duplicate("bookings_active_slot_key")
	}
	r.s.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return notFound
	}
	if b.Status() != booking.StatusCancelled && r.slotTaken(b.FieldID(), b.Date(), b.TimeSlot(), b.ID()) {
		return duplicate("bookings_active_slot_key")
	}
	r.s.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.bookings[id]; !ok {
		return notFound
	}
	delete(r.s.bookings, id)
	return nil
}

func (r bookingRepo) slotTaken(fieldID uuid.UUID, date time.Time, slot booking.TimeSlot, excludeID uuid.UUID) bool {
	for id, b := range r.s.bookings {
		if id == excludeID || b.Status() == booking.StatusCancelled {
			continue
		}
		if b.FieldID() == fieldID && b.Date().Equal(date) && b.TimeSlot() == slot {
			return true
		}
	}
	return false
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*review.Review, error) {
	rv, ok := r.s.Review(id)
	if !ok {
		return nil, notFound
	}
	return rv, nil
}

func (r reviewRepo) Create(_ context.Context, rv *review.Review) error {
	for _, other := range r.s.reviews {
		if other.UserID() == rv.UserID() && other.FieldID() == rv.FieldID() {
			return duplicate("reviews_user_field_key")
		}
	}
	r.s.reviews[rv.ID()] = cloneReview(rv)
	return nil
}

func (r reviewRepo) Update(_ context.Context, rv *review.Review) error {
	if _, ok := r.s.reviews[rv.ID()]; !ok {
		return notFound
	}
	r.s.reviews[rv.ID()] = cloneReview(rv)
	return nil
}

func (r reviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.reviews[id]; !ok {
		return notFound
	}
	delete(r.s.reviews, id)
	return nil
}

func (r reviewRepo) RecalcFieldStats(_ context.Context, fieldID uuid.UUID) error {
	var st RatingStats
	total := 0
	for _, rv := range r.s.reviews {
		if rv.FieldID() == fieldID {
			st.Count++
			total += rv.Rating().Value()
		}
	}
	if st.Count > 0 {
		st.Average = float64(total) / float64(st.Count)
	}
	r.s.stats[fieldID] = st
	return nil
}

func (r reviewRepo) ReviewedFieldIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, rv := range r.s.reviews {
		if rv.UserID() == userID {
			ids = append(ids, rv.FieldID())
		}
	}
	return ids, nil
}

func cloneUser(u *user.User) *user.User {
	return user.ReconstructUser(u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role(), u.CreatedAt(), u.UpdatedAt())
}

func cloneField(f *field.Field) *field.Field {
	return field.ReconstructField(f.ID(), f.Name(), f.Location(), f.SportType(), f.PricePerHour(), f.IsActive(), f.CreatedAt(), f.UpdatedAt())
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(b.ID(), b.UserID(), b.FieldID(), b.Date(), b.TimeSlot(), b.Status(), b.CreatedAt(), b.UpdatedAt())
}

func cloneReview(rv *review.Review) *review.Review {
	return review.ReconstructReview(rv.ID(), rv.UserID(), rv.FieldID(), rv.Rating(), rv.Comment(), rv.CreatedAt(), rv.UpdatedAt())
}
