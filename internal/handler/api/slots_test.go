//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"consultbook/internal/handler/api"
	resdto "consultbook/internal/handler/dto/response"
	"consultbook/internal/pkg/errs"
	"consultbook/internal/usecase/queries"
	"consultbook/internal/usecase/schedule"
	commonhttp "consultbook/tests/common/httptest"
	queriesmock "consultbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	slotQueries *queriesmock.MockSlotQueries
	router      *gin.Engine
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.slotQueries = queriesmock.NewMockSlotQueries(s.ctrl)

	handler := api.NewSlotHandler(s.slotQueries)
	s.router = gin.New()
	s.router.GET("/api/consultants/:id/slots", handler.ListSlots)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSlotHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func slotsPath(consultantID, serviceType, from, to string) string {
	q := url.Values{}
	if serviceType != "" {
		q.Set("service_type", serviceType)
	}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	return "/api/consultants/" + consultantID + "/slots?" + q.Encode()
}

func (s *SlotHandlerTestSuite) TestListSlots() {
	consultantID := uuid.New()
	from := "2026-09-07T00:00:00Z"
	to := "2026-09-08T00:00:00Z"

	s.Run("returns offers and notices", func() {
		start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
		s.slotQueries.EXPECT().
			ListAvailableSlots(gomock.Any(), consultantID, "initial_consultation",
				time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)).
			Return(&queries.SlotsResult{
				Slots: []queries.SlotOffer{
					{
						ConsultantID:   consultantID,
						Start:          start,
						End:            start.Add(30 * time.Minute),
						ServiceType:    "initial_consultation",
						BasePriceCents: 5000,
					},
				},
				Notices: []schedule.Notice{
					{Kind: schedule.NoticeSyncDegraded, Platform: "google", Count: 4},
				},
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "initial_consultation", from, to), nil, "")

		var resp resdto.SlotsResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		require.Len(s.T(), resp.Slots, 1)
		assert.Equal(s.T(), int64(5000), resp.Slots[0].BasePriceCents)
		require.Len(s.T(), resp.Notices, 1)
		assert.Equal(s.T(), "sync_degraded", resp.Notices[0].Kind)
		assert.Equal(s.T(), "google", resp.Notices[0].Platform)
	})

	s.Run("no offers still returns an empty list", func() {
		s.slotQueries.EXPECT().
			ListAvailableSlots(gomock.Any(), consultantID, "initial_consultation", gomock.Any(), gomock.Any()).
			Return(&queries.SlotsResult{}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "initial_consultation", from, to), nil, "")

		var resp resdto.SlotsResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		assert.NotNil(s.T(), resp.Slots)
		assert.Empty(s.T(), resp.Slots)
	})

	s.Run("malformed consultant id returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath("not-a-uuid", "initial_consultation", from, to), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("missing service_type returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "", from, to), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("non-RFC3339 window returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "initial_consultation", "2026-09-07", to), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("unknown service returns 404", func() {
		s.slotQueries.EXPECT().
			ListAvailableSlots(gomock.Any(), consultantID, "hot_stone_massage", gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrServiceNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "hot_stone_massage", from, to), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("unexpected failure returns 500", func() {
		s.slotQueries.EXPECT().
			ListAvailableSlots(gomock.Any(), consultantID, "initial_consultation", gomock.Any(), gomock.Any()).
			Return(nil, errs.New("redis unreachable"))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			slotsPath(consultantID.String(), "initial_consultation", from, to), nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "")
	})
}
