package handlers

import (
	"net/http"

	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// statusForError maps scheduling error codes onto HTTP statuses.
// Non-scheduling errors are treated as internal.
func statusForError(err error) int {
	switch scheduling.CodeOf(err) {
	case scheduling.CodePastDate,
		scheduling.CodeDoctorUnavailable,
		scheduling.CodeOutsideHours,
		scheduling.CodeInvalidTransition,
		scheduling.CodeInvalidInput:
		return http.StatusBadRequest
	case scheduling.CodeSlotTaken:
		return http.StatusConflict
	case scheduling.CodePermissionDenied:
		return http.StatusForbidden
	case scheduling.CodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError renders a scheduling failure as a JSON error response.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		utils.JSONError(c, status, "Internal server error", "")
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
