package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campusevents/internal/catalog"
	"campusevents/internal/domain"
)

type createCollegeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCollege handles POST /api/colleges.
func (h *Handler) CreateCollege(c *gin.Context) {
	var req createCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field: name"})
		return
	}
	col, err := h.catalog.CreateCollege(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

type createStudentRequest struct {
	CollegeID int64  `json:"collegeId" binding:"required"`
	FullName  string `json:"fullName" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// CreateStudent handles POST /api/students.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: collegeId, fullName and email are required"})
		return
	}
	st, err := h.catalog.CreateStudent(c.Request.Context(), req.CollegeID, req.FullName, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListStudents handles GET /api/students. The collegeId filter is optional.
func (h *Handler) ListStudents(c *gin.Context) {
	var collegeID int64
	if raw := c.Query("collegeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, domain.InvalidInput("collegeId must be a valid number"))
			return
		}
		collegeID = id
	}
	students, err := h.catalog.ListStudents(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if students == nil {
		students = []catalog.Student{}
	}
	c.JSON(http.StatusOK, students)
}

type createEventRequest struct {
	CollegeID int64     `json:"collegeId" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	EventType string    `json:"eventType" binding:"required"`
	StartsAt  time.Time `json:"startsAt" binding:"required"`
	EndsAt    time.Time `json:"endsAt" binding:"required"`
	Location  string    `json:"location" binding:"required"`
}

// CreateEvent handles POST /api/events.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed required fields"})
		return
	}
	evt, err := h.catalog.CreateEvent(c.Request.Context(), catalog.Event{
		CollegeID: req.CollegeID,
		Title:     req.Title,
		EventType: req.EventType,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Location:  req.Location,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, evt)
}

// ListEvents handles GET /api/events?collegeId=.
func (h *Handler) ListEvents(c *gin.Context) {
	collegeID, err := queryID(c, "collegeId")
	if err != nil {
		writeError(c, err)
		return
	}
	events, err := h.catalog.ListEvents(c.Request.Context(), collegeID)
	if err != nil {
		writeError(c, err)
		return
	}
	if events == nil {
		events = []catalog.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id.
func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, domain.InvalidInput("valid event id required"))
		return
	}
	evt, err := h.catalog.GetEvent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, evt)
}
