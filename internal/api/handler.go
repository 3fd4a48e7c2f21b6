package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusevents/internal/catalog"
	"campusevents/internal/domain"
	"campusevents/internal/enrollment"
	"campusevents/internal/feedback"
	"campusevents/internal/metrics"
	"campusevents/internal/reporting"
)

// Handler binds the HTTP surface to the services.
type Handler struct {
	catalog    *catalog.Service
	enrollment *enrollment.Service
	feedback   *feedback.Service
	reports    *reporting.Service
}

// New creates a handler.
func New(cat *catalog.Service, enr *enrollment.Service, fb *feedback.Service, rep *reporting.Service) *Handler {
	return &Handler{catalog: cat, enrollment: enr, feedback: fb, reports: rep}
}

// Register mounts all API routes under /api.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/colleges", h.CreateCollege)

	api.POST("/students", h.CreateStudent)
	api.GET("/students", h.ListStudents)

	api.POST("/events", h.CreateEvent)
	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)

	api.POST("/registrations", h.CreateRegistration)
	api.GET("/registrations", h.ListRegistrations)

	api.POST("/attendance/mark", h.MarkAttendance)
	api.GET("/attendance", h.ListAttendance)

	api.POST("/feedback", h.SubmitFeedback)
	api.GET("/feedback", h.ListFeedback)

	reports := api.Group("/reports")
	reports.GET("/event-popularity", h.EventPopularity)
	reports.GET("/attendance", h.AttendanceReport)
	reports.GET("/avg-feedback", h.AvgFeedback)
	reports.GET("/student-participation", h.StudentParticipation)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", h.DashboardStats)
	dashboard.GET("/registration-trends", h.RegistrationTrends)
	dashboard.GET("/event-categories", h.EventCategories)
}

// writeError translates the domain error taxonomy into HTTP responses.
// Anything unrecognized is logged and reported as a generic 500.
func writeError(c *gin.Context, err error) {
	var (
		invalid  *domain.InvalidInputError
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
		fk       *domain.ForeignKeyError
		locked   *domain.AttendanceLockedError
	)
	switch {
	case errors.As(err, &locked):
		metrics.AttendanceLockRejections.Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   locked.Error(),
			"message": "Once attendance is marked, it cannot be removed or changed.",
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Msg})
	case errors.As(err, &fk):
		c.JSON(http.StatusBadRequest, gin.H{"error": fk.Msg})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Msg})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Msg})
	default:
		log.Printf("request %v failed: %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// queryID parses a required positive integer query parameter.
func queryID(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, domain.InvalidInput("%s query parameter required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInput("%s must be a valid number", name)
	}
	return id, nil
}
