package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusevents/internal/feedback"
)

type submitFeedbackRequest struct {
	EventID   int64    `json:"eventId" binding:"required"`
	StudentID int64    `json:"studentId" binding:"required"`
	Rating    *float64 `json:"rating" binding:"required"`
	Comment   *string  `json:"comment"`
}

// SubmitFeedback handles POST /api/feedback.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: eventId, studentId, and rating are required"})
		return
	}
	fb, err := h.feedback.Submit(c.Request.Context(), req.EventID, req.StudentID, *req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

// ListFeedback handles GET /api/feedback?eventId=.
func (h *Handler) ListFeedback(c *gin.Context) {
	eventID, err := queryID(c, "eventId")
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := h.feedback.ListForEvent(c.Request.Context(), eventID)
	if err != nil {
		writeError(c, err)
		return
	}
	if items == nil {
		items = []feedback.FeedbackDetail{}
	}
	c.JSON(http.StatusOK, items)
}
