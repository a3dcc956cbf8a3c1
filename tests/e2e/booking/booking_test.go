//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"field-booking/internal/domain/user"
	"field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/tests/common/authtest"
	"field-booking/tests/common/dbtest"
	"field-booking/tests/common/httptest"
	"field-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite

	fieldID    uuid.UUID
	userID     uuid.UUID
	userToken  string
	adminToken string
	date       string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) seed() {
	t := s.T()

	s.fieldID = dbtest.CreateTestField(t, s.DB, "Central Pitch", "football", true)
	s.userID, s.userToken = authtest.CreateAndLogin(t, s.DB, s.Router, "player@example.com", string(user.RoleUser))
	_, s.adminToken = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
	s.date = time.Now().UTC().AddDate(0, 0, 5).Format(time.DateOnly)
}

func (s *bookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seed()
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seed()
}

func (s *bookingSuite) book(token string, fieldID uuid.UUID, date, slot string) *resdto.BookingResponse {
	t := s.T()

	body := request.CreateBookingRequest{FieldID: fieldID, Date: date, TimeSlot: slot}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("starts pending with user and field embedded", func() {
		t := s.T()

		res := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, s.date, res.Date)
		assert.Equal(t, "10:00-11:00", res.TimeSlot)
		assert.Equal(t, s.userID, res.User.ID)
		assert.Equal(t, s.fieldID, res.Field.ID)
		assert.Equal(t, "Central Pitch", res.Field.Name)
	})

	s.Run("third booking on the same day exceeds the quota", func() {
		t := s.T()

		s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		s.book(s.userToken, s.fieldID, s.date, "11:00-12:00")

		body := request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: "12:00-13:00"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "daily booking limit reached")
	})

	s.Run("cancelled bookings do not count towards the quota", func() {
		t := s.T()

		first := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		s.book(s.userToken, s.fieldID, s.date, "11:00-12:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+first.ID.String()+"/cancel", nil, s.userToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.book(s.userToken, s.fieldID, s.date, "12:00-13:00")
	})

	s.Run("taken slot conflicts", func() {
		t := s.T()

		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))
		s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")

		body := request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: "10:00-11:00"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "time slot already booked")
	})

	s.Run("rejected inputs", func() {
		t := s.T()

		cases := []struct {
			name   string
			body   request.CreateBookingRequest
			status int
		}{
			{"date in the past", request.CreateBookingRequest{FieldID: s.fieldID, Date: time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly), TimeSlot: "10:00-11:00"}, http.StatusBadRequest},
			{"date beyond the advance window", request.CreateBookingRequest{FieldID: s.fieldID, Date: time.Now().UTC().AddDate(0, 0, 31).Format(time.DateOnly), TimeSlot: "10:00-11:00"}, http.StatusBadRequest},
			{"malformed slot", request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: "10:30-11:30"}, http.StatusBadRequest},
			{"malformed date", request.CreateBookingRequest{FieldID: s.fieldID, Date: "05/06/2030", TimeSlot: "10:00-11:00"}, http.StatusBadRequest},
			{"unknown field", request.CreateBookingRequest{FieldID: uuid.New(), Date: s.date, TimeSlot: "10:00-11:00"}, http.StatusNotFound},
		}
		for _, c := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, c.body, s.userToken)
			assert.Equal(t, c.status, w.Code, c.name)
		}
	})

	s.Run("booking for someone else needs admin", func() {
		t := s.T()

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleUser))
		body := request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: "10:00-11:00", UserID: &otherID}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.userToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		assert.Equal(t, otherID, res.User.ID)
	})
}

func (s *bookingSuite) TestConcurrentBookingOfOneSlot() {
	t := s.T()

	const contenders = 5
	tokens := make([]string, contenders)
	for i := range tokens {
		_, tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, fmt.Sprintf("racer%d@example.com", i), string(user.RoleUser))
	}

	body := request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: "18:00-19:00"}
	codes := make([]int, contenders)

	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, tokens[i])
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created, "codes: %v", codes)
	assert.Equal(t, contenders-1, conflicts, "codes: %v", codes)
}

func (s *bookingSuite) TestConcurrentQuota() {
	t := s.T()

	slots := []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00"}
	codes := make([]int, len(slots))

	var wg sync.WaitGroup
	for i, slot := range slots {
		wg.Add(1)
		go func(i int, slot string) {
			defer wg.Done()
			body := request.CreateBookingRequest{FieldID: s.fieldID, Date: s.date, TimeSlot: slot}
			codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, s.userToken).Code
		}(i, slot)
	}
	wg.Wait()

	var created int
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		}
	}
	assert.Equal(t, s.Config.Booking.MaxPerDay, created, "codes: %v", codes)
}

func (s *bookingSuite) TestStatusTransitions() {
	s.Run("admin confirms, user cannot", func() {
		t := s.T()

		b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		url := bookingsURL + "/" + b.ID.String() + "/confirm"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, s.userToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, b.ID))
	})

	s.Run("owner cannot cancel a confirmed booking", func() {
		t := s.T()

		b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String()+"/confirm", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String()+"/cancel", nil, s.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "confirmed booking cannot be cancelled")
		assert.Equal(t, "confirmed", dbtest.BookingStatus(t, s.DB, b.ID))
	})

	s.Run("cancelling inside the window is too late", func() {
		t := s.T()

		today := time.Now().UTC()
		id := dbtest.CreateTestBooking(t, s.DB, s.userID, s.fieldID, today, "21:00-22:00", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+id.String()+"/cancel", nil, s.userToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "booking can no longer be cancelled")
		assert.Equal(t, "pending", dbtest.BookingStatus(t, s.DB, id))
	})

	s.Run("cancelled slot becomes free again", func() {
		t := s.T()

		b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String()+"/cancel", nil, s.userToken)
		require.Equal(t, http.StatusOK, w.Code)

		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))
		s.book(otherToken, s.fieldID, s.date, "10:00-11:00")
	})
}

func (s *bookingSuite) TestOwnership() {
	s.Run("other users cannot read or change a booking", func() {
		t := s.T()

		b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		_, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))
		url := bookingsURL + "/" + b.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url+"/cancel", nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, otherToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("unknown booking", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+uuid.NewString(), nil, s.userToken)
		assert.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/not-a-uuid", nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *bookingSuite) TestListBookings() {
	s.Run("users only see their own, admins see all", func() {
		t := s.T()

		otherID, otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleUser))
		s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		s.book(otherToken, s.fieldID, s.date, "11:00-12:00")

		var mine []resdto.BookingResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.userToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		assert.Equal(t, s.userID, mine[0].User.ID)

		var all []resdto.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, s.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		require.Len(t, all, 2)

		var own []resdto.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/user", nil, otherToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &own)
		require.Len(t, own, 1)
		assert.Equal(t, otherID, own[0].User.ID)
	})

	s.Run("filters narrow the result", func() {
		t := s.T()

		b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
		s.book(s.userToken, s.fieldID, s.date, "11:00-12:00")
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingsURL+"/"+b.ID.String()+"/confirm", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var confirmed []resdto.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=confirmed", nil, s.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Len(t, confirmed, 1)
		assert.Equal(t, b.ID, confirmed[0].ID)

		later := time.Now().UTC().AddDate(0, 0, 10).Format(time.DateOnly)
		var none []resdto.BookingResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?from="+later, nil, s.adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &none)
		assert.Empty(t, none)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=done", nil, s.adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *bookingSuite) TestAvailability() {
	t := s.T()

	s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")

	var res resdto.AvailabilityResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/fields/"+s.fieldID.String()+"/availability?date="+s.date, nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

	hours := s.Config.Booking.ClosingHour - s.Config.Booking.OpeningHour
	require.Len(t, res.Slots, hours)
	for _, slot := range res.Slots {
		assert.Equal(t, slot.TimeSlot != "10:00-11:00", slot.Available, slot.TimeSlot)
	}
}

func (s *bookingSuite) TestDeleteBooking() {
	t := s.T()

	b := s.book(s.userToken, s.fieldID, s.date, "10:00-11:00")
	url := bookingsURL + "/" + b.ID.String()

	w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.adminToken)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
