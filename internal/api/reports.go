package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/reporting"
)

// EventPopularity handles GET /api/reports/event-popularity?collegeId=.
func (h *Handler) EventPopularity(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := h.reports.EventPopularity(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []reporting.EventPopularity{}
	}
	c.JSON(http.StatusOK, items)
}

// AttendanceReport handles GET /api/reports/attendance?eventId=.
func (h *Handler) AttendanceReport(c *gin.Context) {
	eventID, err := queryID(c, "eventId")
	if err != nil {
		writeError(c, err)
		return
	}
	rep, err := h.reports.AttendancePercent(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// AvgFeedback handles GET /api/reports/avg-feedback?eventId=.
func (h *Handler) AvgFeedback(c *gin.Context) {
	eventID, err := queryID(c, "eventId")
	if err != nil {
		writeError(c, err)
		return
	}
	rep, err := h.reports.AvgFeedback(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// StudentParticipation handles GET /api/reports/student-participation?collegeId=.
func (h *Handler) StudentParticipation(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := h.reports.StudentParticipation(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []reporting.Participation{}
	}
	c.JSON(http.StatusOK, items)
}

// DashboardStats handles GET /api/dashboard/stats?collegeId=.
func (h *Handler) DashboardStats(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	stats, err := h.reports.DashboardStats(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RegistrationTrends handles GET /api/dashboard/registration-trends?collegeId=.
func (h *Handler) RegistrationTrends(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	series, err := h.reports.RegistrationTrends(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// EventCategories handles GET /api/dashboard/event-categories?collegeId=.
func (h *Handler) EventCategories(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	shares, err := h.reports.EventCategories(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if shares == nil {
		shares = []reporting.CategoryShare{}
	}
	c.JSON(http.StatusOK, shares)
}
