package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"innovated/internal/service"

	"github.com/rs/zerolog"
)

// CourseHandler handles catalog endpoints
type CourseHandler struct {
	catalogService service.CatalogService
	logger         zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(catalogService service.CatalogService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{catalogService: catalogService, logger: logger}
}

// RegisterRoutes mounts catalog routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/courses", http.HandlerFunc(h.listCourses))
	mux.Handle("/api/courses/", http.HandlerFunc(h.getCourse))
}

// listCourses godoc
// @Summary List courses
// @Description Lists the catalog, optionally filtered by difficulty level.
// @Tags courses
// @Produce json
// @Param level query string false "Difficulty level ('all' disables filtering)"
// @Success 200 {array} model.Course
// @Failure 500 {object} handler.MessageResponse
// @Router /api/courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	level := r.URL.Query().Get("level")
	courses, err := h.catalogService.ListCourses(r.Context(), level)
	if err != nil {
		h.logger.Error().Err(err).Msg("Error fetching courses")
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a single course by its numeric ID.
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 400 {object} handler.MessageResponse "Invalid course ID"
// @Failure 404 {object} handler.MessageResponse "Course not found"
// @Failure 500 {object} handler.MessageResponse
// @Router /api/courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/courses/"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	course, err := h.catalogService.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			respondMessage(w, http.StatusNotFound, "Course not found")
			return
		}
		h.logger.Error().Err(err).Int("course_id", id).Msg("Error fetching course")
		respondMessage(w, http.StatusInternalServerError, "Failed to fetch course")
		return
	}
	respondJSON(w, http.StatusOK, course)
}
