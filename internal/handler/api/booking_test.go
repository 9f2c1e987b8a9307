//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"consultbook/internal/domain/booking"
	"consultbook/internal/domain/timeline"
	"consultbook/internal/handler/api"
	resdto "consultbook/internal/handler/dto/response"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/coupons"
	"consultbook/internal/usecase/queries"
	"consultbook/internal/usecase/schedule"
	"consultbook/internal/usecase/shared"
	commonhttp "consultbook/tests/common/httptest"
	commandsmock "consultbook/tests/mock/commands"
	queriesmock "consultbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	releaseCommands *commandsmock.MockReleaseCommands
	bookingQueries  *queriesmock.MockBookingQueries
	router          *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.ctrl)
	s.releaseCommands = commandsmock.NewMockReleaseCommands(s.ctrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.ctrl)

	handler := api.NewBookingHandler(s.bookingCommands, s.releaseCommands, s.bookingQueries)

	s.router = gin.New()
	apiGroup := s.router.Group("/api")
	apiGroup.POST("/bookings", handler.CommitBooking)
	apiGroup.GET("/bookings", handler.ListClientBookings)
	apiGroup.GET("/bookings/:id", handler.GetBookingStatus)
	apiGroup.POST("/bookings/:id/cancel", handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) commitBody() map[string]any {
	return map[string]any{
		"consultant_id": uuid.New().String(),
		"client_id":     uuid.New().String(),
		"start":         "2026-09-07T10:00:00Z",
		"service_type":  "initial_consultation",
	}
}

func (s *BookingHandlerTestSuite) TestCommitBooking() {
	s.Run("created booking returns 201 with payment reference", func() {
		start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
		price, err := booking.NewMoney(5000)
		s.Require().NoError(err)
		b := booking.NewBooking(
			uuid.New(), uuid.New(),
			timeline.MustInterval(start, start.Add(30*time.Minute)),
			"initial_consultation", price, nil,
		)
		s.bookingCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CommitBookingResult{
				Booking:    b,
				PaymentRef: "pay-ref-1",
				FinalPrice: 5000,
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.commitBody(), "")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		assert.Equal(s.T(), b.ID(), resp.ID)
		assert.Equal(s.T(), "pending_payment", resp.Status)
		assert.Equal(s.T(), "pay-ref-1", resp.PaymentRef)
		assert.Equal(s.T(), int64(5000), resp.PriceCents)
	})

	s.Run("missing required fields returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			map[string]any{"service_type": "initial_consultation"}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("discounted commit surfaces the coupon outcome", func() {
		start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)
		price, err := booking.NewMoney(2100)
		s.Require().NoError(err)
		redemptionID := uuid.New()
		b := booking.NewBooking(
			uuid.New(), uuid.New(),
			timeline.MustInterval(start, start.Add(30*time.Minute)),
			"initial_consultation", price, &redemptionID,
		)
		s.bookingCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CommitBookingResult{
				Booking:    b,
				PaymentRef: "pay-ref-2",
				FinalPrice: 2100,
				Discounted: true,
			}, nil)

		body := s.commitBody()
		body["coupon_code"] = "SPRING30"
		body["client_email"] = "client@example.com"
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, "")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		assert.True(s.T(), resp.Discounted)
		assert.Equal(s.T(), int64(2100), resp.PriceCents)
	})
}

func (s *BookingHandlerTestSuite) TestCommitBookingErrorMapping() {
	conflict := &commands.SlotConflictError{
		Report: &schedule.ConflictReport{
			Candidate: timeline.MustInterval(
				time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC),
			),
			Overlap: timeline.BusyInterval{Source: timeline.SourceBooking, Ref: "b1"},
		},
	}
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"slot conflict", commands.ErrSlotConflict, http.StatusConflict, "slot_conflict"},
		{"wrapped slot conflict keeps its code", conflict, http.StatusConflict, "slot_conflict"},
		{"daily limit", commands.ErrDailyLimitReached, http.StatusConflict, "slot_conflict"},
		{"invalid coupon", coupons.ErrCouponInvalid, http.StatusUnprocessableEntity, "coupon_invalid"},
		{"exhausted coupon", commands.ErrCouponExhausted, http.StatusUnprocessableEntity, "coupon_invalid"},
		{
			"fraud suspected",
			&coupons.FraudSuspectedError{Code: "spring30", Score: 70},
			http.StatusUnprocessableEntity, "coupon_fraud_suspected",
		},
		{"unknown service", commands.ErrServiceNotFound, http.StatusNotFound, ""},
		{"lead time", commands.ErrLeadTimeNotMet, http.StatusBadRequest, ""},
		{"invalid slot", commands.ErrInvalidSlot, http.StatusBadRequest, ""},
		{"unexpected failure", errs.New("tx aborted"), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.bookingCommands.EXPECT().CommitBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", s.commitBody(), "")
			commonhttp.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantCode)
		})
	}
}

func (s *BookingHandlerTestSuite) TestGetBookingStatus() {
	s.Run("found booking returns its status", func() {
		id := uuid.New()
		s.bookingQueries.EXPECT().GetBookingStatus(gomock.Any(), id).
			Return(&queries.BookingStatusView{
				ID:          id,
				Status:      "confirmed",
				Start:       time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
				End:         time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC),
				ServiceType: "initial_consultation",
				PriceCents:  5000,
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, "")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.Equal(s.T(), "confirmed", resp.Status)
	})

	s.Run("unknown booking returns 404", func() {
		id := uuid.New()
		s.bookingQueries.EXPECT().GetBookingStatus(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("malformed id returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestListClientBookings() {
	s.Run("returns the client's bookings", func() {
		clientID := uuid.New()
		s.bookingQueries.EXPECT().ListClientBookings(gomock.Any(), clientID).
			Return([]shared.BookingView{
				{
					ID:           uuid.New(),
					ConsultantID: uuid.New(),
					ClientID:     clientID,
					Start:        time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
					End:          time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC),
					ServiceType:  "initial_consultation",
					Status:       "confirmed",
					PriceCents:   5000,
				},
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?client_id="+clientID.String(), nil, "")

		var resp []resdto.BookingListItem
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		require.Len(s.T(), resp, 1)
		assert.Equal(s.T(), "confirmed", resp[0].Status)
	})

	s.Run("malformed client id returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?client_id=abc", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	clientID := uuid.New()
	body := map[string]any{"client_id": clientID.String()}
	path := "/api/bookings/" + bookingID.String() + "/cancel"

	s.Run("successful cancellation returns 204", func() {
		s.releaseCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, clientID).Return(nil)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
		assert.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("past the cutoff returns 409", func() {
		s.releaseCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, clientID).
			Return(commands.ErrCancelCutoffPassed)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("terminal booking returns 409", func() {
		s.releaseCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, clientID).
			Return(commands.ErrBookingNotCancelable)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("unknown booking returns 404", func() {
		s.releaseCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, clientID).
			Return(commands.ErrBookingNotFound)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, path, body, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}
