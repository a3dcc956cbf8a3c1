//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	"field-booking/tests/common/httptest"
	"field-booking/tests/common/testutil"
	commandsmock "field-booking/tests/mock/commands"
	queriesmock "field-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FieldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFieldCommands
	mockQueries  *queriesmock.MockFieldQueries
	admin        authz.Actor
	view         *queries.FieldView
}

func (s *FieldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFieldCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFieldQueries(s.mockCtrl)
	s.admin = authz.NewActor(uuid.New(), user.RoleAdmin)
	s.view = builder.NewFieldBuilder().WithRating(3, 4.33).BuildView()

	h := api.NewFieldHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/fields", h.ListFields)
	s.router.GET("/fields/:id", h.GetField)
	s.router.GET("/fields/:id/availability", h.GetAvailability)

	admin := s.router.Group("/fields", func(c *gin.Context) {
		middleware.SetActor(c, s.admin)
	})
	admin.POST("", h.CreateField)
	admin.PUT("/:id", h.UpdateField)
	admin.DELETE("/:id", h.DeleteField)
}

func (s *FieldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFieldHandlerSuite(t *testing.T) {
	suite.Run(t, new(FieldHandlerTestSuite))
}

func (s *FieldHandlerTestSuite) fieldURL(suffix string) string {
	return "/fields/" + s.view.ID.String() + suffix
}

func (s *FieldHandlerTestSuite) TestListFields() {
	s.Run("success: without filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), nil).
			Return([]*queries.FieldView{s.view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields", nil, "")

		var response []resdto.FieldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		want := resdto.FieldResponse{
			ID:            s.view.ID,
			Name:          "Central Pitch",
			Location:      "12 Stadium Road",
			SportType:     "football",
			PricePerHour:  50,
			Active:        true,
			ReviewCount:   3,
			AverageRating: 4.33,
			CreatedAt:     s.view.CreatedAt,
			UpdatedAt:     s.view.UpdatedAt,
		}
		s.Empty(cmp.Diff(want, response[0], cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })))
	})

	s.Run("success: sport filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sportType *string) ([]*queries.FieldView, error) {
				s.Require().NotNil(sportType)
				s.Equal("tennis", *sportType)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields?sportType=tennis", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: unknown sport", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/fields?sportType=golf", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *FieldHandlerTestSuite) TestGetField() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(s.view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.fieldURL(""), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(nil, commands.ErrFieldNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.fieldURL(""), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "field not found")
	})
}

func (s *FieldHandlerTestSuite) TestGetAvailability() {
	s.Run("success: lists slots", func() {
		date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Availability(gomock.Any(), s.view.ID, "2025-06-01").
			Return(&queries.FieldAvailability{
				FieldID: s.view.ID,
				Date:    date,
				Slots: []queries.SlotAvailability{
					{TimeSlot: "08:00-09:00", Available: true},
					{TimeSlot: "09:00-10:00", Available: false},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.fieldURL("/availability?date=2025-06-01"), nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-06-01", response.Date)
		s.Equal([]resdto.SlotResponse{
			{TimeSlot: "08:00-09:00", Available: true},
			{TimeSlot: "09:00-10:00", Available: false},
		}, response.Slots)
	})

	s.Run("error: date is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.fieldURL("/availability"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed date", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), s.view.ID, "June 1st").
			Return(nil, booking.ErrInvalidDateFormat).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.fieldURL("/availability?date=June%201st"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *FieldHandlerTestSuite) TestCreateField() {
	reqBody := builder.NewFieldBuilder().BuildCreateRequestDTO()

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.admin, commands.CreateFieldRequest{
			Name:         "Central Pitch",
			Location:     "12 Stadium Road",
			SportType:    "football",
			PricePerHour: 50,
		}).Return(s.view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: binding", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("name", nil),
			testutil.Field("sportType", "golf"),
			testutil.Field("pricePerHour", 0),
			testutil.Field("pricePerHour", -10),
		} {
			requestMap := testutil.DtoMap(s.T(), reqBody, mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", requestMap, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: value object message is surfaced", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.admin, gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("field name must be between 3 and 50 characters"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/fields", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "field name must be between 3 and 50 characters")
	})
}

func (s *FieldHandlerTestSuite) TestUpdateField() {
	s.mockCommands.EXPECT().Update(gomock.Any(), s.admin, s.view.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ authz.Actor, _ uuid.UUID, req commands.UpdateFieldRequest) error {
			s.Nil(req.Name)
			s.Require().NotNil(req.PricePerHour)
			s.InDelta(65.5, *req.PricePerHour, 0.001)
			s.Require().NotNil(req.Active)
			s.False(*req.Active)
			return nil
		}).Times(1)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), s.view.ID).Return(s.view, nil).Times(1)

	body := map[string]any{"pricePerHour": 65.5, "active": false}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.fieldURL(""), body, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *FieldHandlerTestSuite) TestDeleteField() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.admin, s.view.ID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.fieldURL(""), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown field", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.admin, s.view.ID).Return(commands.ErrFieldNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.fieldURL(""), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
