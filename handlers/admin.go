package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin surface: doctor profile management,
// specialization setup and user listing.
type AdminHandler struct {
	UserService   user.UserService
	DoctorService doctor.DoctorService
}

// CreateDoctorHandler handles POST /api/admin/doctors. It attaches a
// doctor profile to an existing doctor-role user.
func (h *AdminHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doc, err := h.DoctorService.CreateDoctor(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Doctor creation failed", zap.String("userID", req.UserID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// UpdateDoctorHandler handles PATCH /api/admin/doctors/:id.
func (h *AdminHandler) UpdateDoctorHandler(c *gin.Context) {
	var req models.DoctorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	doc, err := h.DoctorService.UpdateDoctor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DisableDoctorHandler handles DELETE /api/admin/doctors/:id. The
// profile is kept but stops accepting appointments.
func (h *AdminHandler) DisableDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.DoctorService.DisableDoctor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor disabled"})
}

// ListAllDoctorsHandler handles GET /api/admin/doctors, including
// disabled profiles.
func (h *AdminHandler) ListAllDoctorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctors, err := h.DoctorService.ListAllDoctors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// CreateSpecializationHandler handles POST /api/admin/specializations.
func (h *AdminHandler) CreateSpecializationHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	spec, err := h.DoctorService.CreateSpecialization(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, spec)
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list users", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
