package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes the public doctor catalog and the availability
// administration endpoints.
type DoctorHandler struct {
	DoctorService doctor.DoctorService
}

// ListDoctorsHandler handles GET /api/doctors. Only doctors currently
// accepting appointments are listed; an optional specialization query
// filters the catalog.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var (
		doctors []models.Doctor
		err     error
	)
	if spec := c.Query("specialization"); spec != "" {
		doctors, err = h.DoctorService.ListBySpecialization(c.Request.Context(), spec)
	} else {
		doctors, err = h.DoctorService.ListAvailableDoctors(c.Request.Context())
	}
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorHandler handles GET /api/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.DoctorService.GetDoctorByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListSpecializationsHandler handles GET /api/specializations.
func (h *DoctorHandler) ListSpecializationsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	specs, err := h.DoctorService.ListSpecializations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list specializations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list specializations", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"specializations": specs})
}

// SetAvailabilityHandler handles PUT /api/doctors/:id/availability. The
// payload replaces the weekday windows it names; admins may edit any
// doctor, a doctor only their own schedule.
func (h *DoctorHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Entries []models.AvailabilityEntry `json:"entries" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doctorID := c.Param("id")
	windows, err := h.DoctorService.SetAvailability(c.Request.Context(), doctorID, req.Entries, callerFrom(c))
	if err != nil {
		logger.Warn("Failed to set availability", zap.String("doctorID", doctorID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": windows})
}

// ListAvailabilityHandler handles GET /api/doctors/:id/availability.
func (h *DoctorHandler) ListAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("id")
	windows, err := h.DoctorService.ListAvailability(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": windows})
}
