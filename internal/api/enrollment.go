package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/enrollment"
)

type createRegistrationRequest struct {
	EventID   int64 `json:"eventId" binding:"required"`
	StudentID int64 `json:"studentId" binding:"required"`
}

// CreateRegistration handles POST /api/registrations.
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req createRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: eventId and studentId are required"})
		return
	}
	reg, err := h.enrollment.Register(c.Request.Context(), req.EventID, req.StudentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ListRegistrations handles GET /api/registrations?eventId=.
func (h *Handler) ListRegistrations(c *gin.Context) {
	eventID, err := queryID(c, "eventId")
	if err != nil {
		writeError(c, err)
		return
	}
	regs, err := h.enrollment.ListRegistrations(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	if regs == nil {
		regs = []enrollment.RegistrationDetail{}
	}
	c.JSON(http.StatusOK, regs)
}

type markAttendanceRequest struct {
	RegistrationID int64 `json:"registrationId" binding:"required"`
	Present        *bool `json:"present" binding:"required"`
}

// MarkAttendance handles POST /api/attendance/mark.
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: registrationId (number) and present (boolean) are required"})
		return
	}
	att, err := h.enrollment.MarkAttendance(c.Request.Context(), req.RegistrationID, *req.Present)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, att)
}

// ListAttendance handles GET /api/attendance?eventId=.
func (h *Handler) ListAttendance(c *gin.Context) {
	eventID, err := queryID(c, "eventId")
	if err != nil {
		writeError(c, err)
		return
	}
	records, err := h.enrollment.ListAttendance(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	if records == nil {
		records = []enrollment.AttendanceDetail{}
	}
	c.JSON(http.StatusOK, records)
}
