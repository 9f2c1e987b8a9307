package api

import (
	"errors"
	"net/http"

	reqdto "consultbook/internal/handler/dto/request"
	resdto "consultbook/internal/handler/dto/response"
	"consultbook/internal/pkg/identity"
	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/coupons"
	"consultbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	releaseCommands commands.ReleaseCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	releaseCommands commands.ReleaseCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		releaseCommands: releaseCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Commit a booking
// @Description Reserve a slot, validating availability and any coupon atomically
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CommitBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CommitBooking(c *gin.Context) {
	var req reqdto.CommitBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.CommitBookingInput{
		ConsultantID: req.ConsultantID,
		ClientID:     req.ClientID,
		Start:        req.Start,
		ServiceType:  req.ServiceType,
		CouponCode:   req.GetCouponCode(),
		Client: identity.ClientIdentity{
			Hash:  identity.HashString(req.ClientID.String()),
			Email: req.ClientEmail,
			IP:    c.ClientIP(),
		},
	}

	result, err := h.bookingCommands.CommitBooking(c.Request.Context(), input)
	if err != nil {
		h.respondCommitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}

// respondCommitError keeps the three user-facing outcomes distinct:
// "the time just got taken" (retry with fresh slots), "the coupon did
// not work" (retry without it), and plain input defects.
func (h *BookingHandler) respondCommitError(c *gin.Context, err error) {
	var fraud *coupons.FraudSuspectedError
	switch {
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is no longer available, please pick another",
			"code":  "slot_conflict",
		})
	case errors.Is(err, commands.ErrDailyLimitReached):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Consultant is fully booked for that day",
			"code":  "slot_conflict",
		})
	case errors.Is(err, coupons.ErrCouponInvalid), errors.Is(err, commands.ErrCouponExhausted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Coupon is invalid or no longer available",
			"code":  "coupon_invalid",
		})
	case errors.As(err, &fraud):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Coupon could not be applied and was flagged for review",
			"code":  "coupon_fraud_suspected",
		})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service type not found",
		})
	case errors.Is(err, commands.ErrLeadTimeNotMet):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot starts before the minimum lead time",
		})
	case errors.Is(err, commands.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot interval",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking status
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetBookingStatus(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusView(view))
}

// @Summary List client bookings
// @Tags bookings
// @Produce json
// @Param client_id query string true "Client ID"
// @Success 200 {array} resdto.BookingListItem
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListClientBookings(c *gin.Context) {
	clientID, err := uuid.Parse(c.Query("client_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID format",
		})
		return
	}

	views, err := h.bookingQueries.ListClientBookings(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Cancel a booking
// @Description Client cancellation, subject to the cancellation cutoff
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.releaseCommands.CancelBooking(c.Request.Context(), id, req.ClientID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrCancelCutoffPassed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancellation cutoff has passed",
			})
		case errors.Is(err, commands.ErrBookingNotCancelable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking cannot be cancelled in its current state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
