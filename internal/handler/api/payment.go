package api

import (
	"errors"
	"net/http"

	reqdto "consultbook/internal/handler/dto/request"
	"consultbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Payment provider webhook
// @Description Drives pending_payment bookings to confirmed or released
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment outcome"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *PaymentHandler) HandlePaymentWebhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.paymentCommands.HandlePaymentResult(c.Request.Context(), req.PaymentRef, commands.PaymentOutcome(req.Outcome))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking for that payment reference",
			})
		case errors.Is(err, commands.ErrPaymentReconcile):
			// The slot was already reclaimed; the provider must refund
			// rather than retry.
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking was released before payment confirmed, refund required",
				"code":  "payment_reconciliation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
