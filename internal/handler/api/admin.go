package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"consultbook/internal/calendar"
	reqdto "consultbook/internal/handler/dto/request"
	resdto "consultbook/internal/handler/dto/response"
	"consultbook/internal/pkg/config"
	"consultbook/internal/pkg/jwt"
	"consultbook/internal/pkg/password"
	"consultbook/internal/usecase/commands"
	"consultbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const adminUsername = "admin"

type AdminHandler struct {
	jwtService      *jwt.Service
	adminCfg        config.AdminConfig
	releaseCommands commands.ReleaseCommands
	bookingQueries  queries.BookingQueries
	syncService     *calendar.SyncService
}

func NewAdminHandler(
	jwtService *jwt.Service,
	adminCfg config.AdminConfig,
	releaseCommands commands.ReleaseCommands,
	bookingQueries queries.BookingQueries,
	syncService *calendar.SyncService,
) *AdminHandler {
	return &AdminHandler{
		jwtService:      jwtService,
		adminCfg:        adminCfg,
		releaseCommands: releaseCommands,
		bookingQueries:  bookingQueries,
		syncService:     syncService,
	}
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if req.Username != adminUsername ||
		password.ComparePassword(h.adminCfg.PasswordHash, req.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username, "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AdminLoginResponse{Token: token})
}

// @Summary Force-release a booking
// @Description Administrative override that cancels a live booking
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ForceReleaseRequest true "Release reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/force-release [post]
func (h *AdminHandler) ForceRelease(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ForceReleaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.releaseCommands.ForceRelease(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
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

// @Summary Trigger calendar sync
// @Description Run an immediate sync cycle for one consultant
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultant ID"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/consultants/{id}/sync [post]
func (h *AdminHandler) SyncNow(c *gin.Context) {
	consultantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid consultant ID format",
		})
		return
	}

	// Detached from the request context so the sync survives the 202.
	go h.syncService.SyncConsultant(context.Background(), consultantID)

	c.JSON(http.StatusAccepted, gin.H{"status": "sync started"})
}

// @Summary Consultant agenda
// @Description Bookings for one consultant on one day
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultant ID"
// @Param day query string true "Day start (RFC3339)"
// @Success 200 {array} resdto.BookingListItem
// @Failure 400 {object} map[string]string
// @Router /admin/consultants/{id}/agenda [get]
func (h *AdminHandler) ConsultantAgenda(c *gin.Context) {
	consultantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid consultant ID format",
		})
		return
	}

	day, err := time.Parse(time.RFC3339, c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day timestamp, want RFC3339",
		})
		return
	}

	views, err := h.bookingQueries.GetConsultantAgenda(c.Request.Context(), consultantID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
