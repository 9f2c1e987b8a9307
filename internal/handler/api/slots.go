package api

import (
	"errors"
	"net/http"
	"time"

	resdto "consultbook/internal/handler/dto/response"
	"consultbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{slotQueries: slotQueries}
}

// @Summary List available slots
// @Description List offerable slots for a consultant and service over a date window
// @Tags slots
// @Produce json
// @Param id path string true "Consultant ID"
// @Param service_type query string true "Service type"
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /consultants/{id}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	consultantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid consultant ID format",
		})
		return
	}

	serviceType := c.Query("service_type")
	if serviceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "service_type is required",
		})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from timestamp, want RFC3339",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to timestamp, want RFC3339",
		})
		return
	}

	result, err := h.slotQueries.ListAvailableSlots(c.Request.Context(), consultantID, serviceType, from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotsResult(result))
}
