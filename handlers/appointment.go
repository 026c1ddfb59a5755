package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"medibook/models"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes appointment booking, lifecycle and slot
// enumeration endpoints.
type AppointmentHandler struct {
	Scheduling scheduling.Service
}

// CreateAppointmentHandler handles POST /api/appointments. The patient
// identity comes from the bearer token, never the payload.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patientID := c.GetString("userID")
	appt, err := h.Scheduling.CreateAppointment(c.Request.Context(), patientID, req)
	if err != nil {
		logger.Warn("Booking rejected",
			zap.String("patientID", patientID),
			zap.String("doctorID", req.DoctorID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	invalidateSlotCache(c, req.DoctorID, req.Date)
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments. Patients see
// their own bookings, doctors their schedule, admins everything.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Scheduling.ListForCaller(c.Request.Context(), callerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Scheduling.GetByID(c.Request.Context(), c.Param("id"), callerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler handles POST /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	caller := callerFrom(c)
	appt, err := h.Scheduling.GetByID(c.Request.Context(), id, caller)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Scheduling.CancelAppointment(c.Request.Context(), id, caller); err != nil {
		logger.Warn("Cancel rejected", zap.String("appointmentID", id), zap.Error(err))
		respondError(c, err)
		return
	}

	// The freed slot must show up in listings right away.
	invalidateSlotCache(c, appt.DoctorID, appt.Date)
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// UpdateStatusHandler handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id := c.Param("id")
	appt, err := h.Scheduling.UpdateStatus(c.Request.Context(), id, req.Status, callerFrom(c))
	if err != nil {
		logger.Warn("Status change rejected",
			zap.String("appointmentID", id),
			zap.String("newStatus", string(req.Status)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	// Transitions out of pending/confirmed free the slot.
	if !appt.Status.Active() {
		invalidateSlotCache(c, appt.DoctorID, appt.Date)
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateNotesHandler handles PATCH /api/appointments/:id/notes.
func (h *AppointmentHandler) UpdateNotesHandler(c *gin.Context) {
	var req models.NotesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	appt, err := h.Scheduling.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes, callerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// AvailableSlotsHandler handles GET /api/doctors/:id/available-slots.
// The date query defaults to today. Results are cached briefly in Redis
// since slot listings are read far more often than they change.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID := c.Param("id")
	date := c.DefaultQuery("date", time.Now().UTC().Format(utils.DateLayout))

	cacheKey := utils.SlotCachePrefix + doctorID + ":" + date
	cacheClient := utils.CacheClient
	if cacheClient != nil {
		if cached, err := cacheClient.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var slots []string
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				c.JSON(http.StatusOK, gin.H{"date": date, "availableSlots": slots})
				return
			}
		}
	}

	slots, err := h.Scheduling.AvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	if cacheClient != nil {
		if payload, err := json.Marshal(slots); err == nil {
			if err := cacheClient.Set(c.Request.Context(), cacheKey, payload, utils.SlotCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache slot listing", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "availableSlots": slots})
}

// invalidateSlotCache drops the cached slot listing for one doctor-day
// after a write (booking, cancellation, no-show) so the next read
// reflects it immediately.
func invalidateSlotCache(c *gin.Context, doctorID, date string) {
	if utils.CacheClient == nil {
		return
	}
	cacheKey := utils.SlotCachePrefix + doctorID + ":" + date
	if err := utils.CacheClient.Del(c.Request.Context(), cacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate slot cache", zap.String("key", cacheKey), zap.Error(err))
	}
}
