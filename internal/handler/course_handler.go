package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/armonia-apps/msa-client-api/internal/models"
	"github.com/armonia-apps/msa-client-api/internal/service"
	appErrors "github.com/armonia-apps/msa-client-api/pkg/errors"
	"github.com/armonia-apps/msa-client-api/pkg/response"
)

// CourseHandler wires courses and lessons to HTTP routes.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs a new CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// ListCourses godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param insegnante_id query string false "Filter by teacher"
// @Param attivo query bool false "Filter by active status"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	filter := models.CourseFilter{
		TeacherID: c.Query("insegnante_id"),
		Active:    boolQuery(c, "attivo"),
	}
	courses, err := h.courses.ListCourses(c.Request.Context(), actorFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// CreateCourse creates a new course.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.courses.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// UpdateCourse updates a course.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req service.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.courses.UpdateCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// DeleteCourse removes a course.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courses.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListLessons godoc
// @Summary List lessons
// @Tags Lessons
// @Produce json
// @Param corso_id query string false "Filter by course"
// @Param from_date query string false "From date (YYYY-MM-DD)"
// @Param to_date query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *CourseHandler) ListLessons(c *gin.Context) {
	filter := models.LessonFilter{
		CourseID:  c.Query("corso_id"),
		TeacherID: c.Query("insegnante_id"),
		FromDate:  c.Query("from_date"),
		ToDate:    c.Query("to_date"),
	}
	lessons, err := h.courses.ListLessons(c.Request.Context(), actorFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons)
}

// CreateLesson schedules a new lesson.
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid lesson payload"))
		return
	}
	lesson, err := h.courses.CreateLesson(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

// UpdateLesson updates a lesson.
func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	var req service.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid lesson payload"))
		return
	}
	lesson, err := h.courses.UpdateLesson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson)
}

// DeleteLesson removes a lesson.
func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	if err := h.courses.DeleteLesson(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
