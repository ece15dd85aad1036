package handlers

import (
	"errors"
	"net/http"

	"stylebook/models"
	"stylebook/services/appointment"
	"stylebook/services/scheduling"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking lifecycle and availability engine
// over HTTP.
type AppointmentHandler struct {
	Svc          appointment.AppointmentService
	Availability scheduling.AvailabilityService
	Clock        utils.Clock
}

func NewAppointmentHandler(svc appointment.AppointmentService, avail scheduling.AvailabilityService, clock utils.Clock) *AppointmentHandler {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &AppointmentHandler{Svc: svc, Availability: avail, Clock: clock}
}

func actorFrom(c *gin.Context) appointment.Actor {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	id, _ := userID.(string)
	r, _ := role.(string)
	return appointment.Actor{UserID: id, Role: r}
}

// respondAppointmentError maps service sentinel errors to HTTP statuses.
func respondAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		jsonError(c, http.StatusNotFound, "appointment not found")
	case errors.Is(err, appointment.ErrForbidden):
		jsonError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appointment.ErrValidation), errors.Is(err, appointment.ErrInvalidStatus):
		jsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken):
		jsonError(c, http.StatusConflict, err.Error())
	default:
		getLogger(c).Error("appointment operation failed", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "internal error")
	}
}

// AvailableSlotsHandler returns bookable start times for a provider on a
// date. Exactly one of stylistId or salonId must be supplied.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	stylistID := c.Query("stylistId")
	salonID := c.Query("salonId")
	date := c.Query("date")
	if (stylistID == "") == (salonID == "") {
		jsonError(c, http.StatusBadRequest, "exactly one of stylistId or salonId is required")
		return
	}
	if _, err := utils.ParseDate(date); err != nil {
		jsonError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	duration := scheduling.DefaultStepMinutes
	if d := c.Query("duration"); d != "" {
		var err error
		duration, err = parsePositiveInt(d)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "duration must be a positive integer of minutes")
			return
		}
	}

	kind, providerID := models.KindStylist, stylistID
	if salonID != "" {
		kind, providerID = models.KindSalon, salonID
	}

	result, err := h.Availability.GetAvailableSlots(c.Request.Context(), kind, providerID, date, duration)
	if err != nil {
		getLogger(c).Error("failed to compute available slots",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateHandler books a new PENDING appointment for the caller.
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), actorFrom(c), req, h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListHandler returns the caller's bookings, enriched, after a sweep.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	actor := actorFrom(c)
	list, err := h.Svc.ListForClient(c.Request.Context(), actor.UserID, h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// ListForStylistHandler returns bookings addressed to the calling stylist.
func (h *AppointmentHandler) ListForStylistHandler(c *gin.Context) {
	actor := actorFrom(c)
	list, err := h.Svc.ListForStylist(c.Request.Context(), actor.UserID, h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// ListForSalonHandler returns bookings addressed to a salon the caller
// owns.
func (h *AppointmentHandler) ListForSalonHandler(c *gin.Context) {
	list, err := h.Svc.ListForSalon(c.Request.Context(), actorFrom(c), c.Param("salonId"), h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// GetByIDHandler returns one enriched booking, rejection-checked first.
func (h *AppointmentHandler) GetByIDHandler(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"), h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateStatusHandler applies a manual status transition.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), req.Status, h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteHandler removes a booking record.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

// CountdownHandler returns a booking with its live auto-reject countdown.
func (h *AppointmentHandler) CountdownHandler(c *gin.Context) {
	b, countdown, err := h.Svc.CountdownFor(c.Request.Context(), actorFrom(c), c.Param("id"), h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": b, "countdown": countdown})
}

// CheckRejectionHandler runs the single-booking rejection check.
func (h *AppointmentHandler) CheckRejectionHandler(c *gin.Context) {
	rejected, err := h.Svc.CheckRejection(c.Request.Context(), c.Param("id"), h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": rejected})
}

// CountdownStatsHandler aggregates countdown state over the caller's
// pending bookings.
func (h *AppointmentHandler) CountdownStatsHandler(c *gin.Context) {
	actor := actorFrom(c)
	stats, err := h.Svc.CountdownStats(c.Request.Context(), actor.UserID, h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RejectPastHandler triggers an immediate sweep. Admin only.
func (h *AppointmentHandler) RejectPastHandler(c *gin.Context) {
	result, err := h.Svc.RejectPast(c.Request.Context(), h.Clock.Now())
	if err != nil {
		respondAppointmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
