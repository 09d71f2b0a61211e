package rest

import (
	"context"
	"courseHub/domain"
	"courseHub/internal/repository/postgres"
	"courseHub/pkg/logger"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const defaultPageSize = 10

type CatalogService interface {
	PopularByCategory(ctx context.Context, category string) ([]domain.CourseSummary, error)
	CoursesByCategory(ctx context.Context, category string) ([]domain.CourseSummary, error)
	Trending(ctx context.Context) ([]domain.TrendingCourse, error)
	Search(ctx context.Context, filter postgres.CourseFilter, page, size int) ([]domain.CourseSummary, error)
	CountCourses(ctx context.Context, filter postgres.CourseFilter) (int64, error)
	GetCourse(ctx context.Context, id uint) (domain.Course, error)
	GetCourseTitle(ctx context.Context, id uint) (string, error)
	AddCourse(ctx context.Context, course *domain.Course) error
	AdminListCourses(ctx context.Context, search, sort string, page, size int) ([]domain.Course, error)
	AdminCountCourses(ctx context.Context, search string) (int64, error)
	UpdateCourse(ctx context.Context, id uint, course *domain.Course) error
	DeleteCourse(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CourseRequest struct {
	Title             string  `json:"title" validate:"required"`
	Category          string  `json:"category"`
	Level             string  `json:"level"`
	Price             float64 `json:"price" validate:"gte=0"`
	Rating            float64 `json:"rating" validate:"gte=0,lte=5"`
	TotalReviewNumber int     `json:"totalReviewNumber"`
	Lectures          int     `json:"lectures"`
	Duration          string  `json:"duration"`
	Image             string  `json:"image"`
	CourseDescription string  `json:"courseDescription"`
	Name              string  `json:"name"`
	UserImg           string  `json:"userImg"`
	LastUpdated       string  `json:"lastUpdated"`
}

func (req CourseRequest) toDomain() domain.Course {
	course := domain.Course{
		Title:             req.Title,
		Category:          req.Category,
		Level:             req.Level,
		Price:             req.Price,
		Rating:            req.Rating,
		TotalReviewNumber: req.TotalReviewNumber,
		Lectures:          req.Lectures,
		Duration:          req.Duration,
		Image:             req.Image,
		CourseDescription: req.CourseDescription,
		Name:              req.Name,
		UserImg:           req.UserImg,
	}

	if parsed, err := time.Parse(time.RFC3339, req.LastUpdated); err == nil {
		course.LastUpdated = parsed
	}

	return course
}

// PopularByCategory handles GET /courses/:category (home page sections).
func (h *CatalogHandler) PopularByCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	courses, err := h.catalogService.PopularByCategory(ctx, c.Param("category"))
	if err != nil {
		logger.Error("Failed to fetch popular courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, courses)
}

// Trending handles GET /trending-courses: top three by review count.
func (h *CatalogHandler) Trending(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	courses, err := h.catalogService.Trending(ctx)
	if err != nil {
		logger.Error("Failed to fetch trending courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, courses)
}

// Search handles GET /courses with optional category/search filters and
// pagination.
func (h *CatalogHandler) Search(c echo.Context) error {
	filter := postgres.CourseFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	courses, err := h.catalogService.Search(ctx, filter, page, size)
	if err != nil {
		logger.Error("Failed to search courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, courses)
}

// CoursesByCategory handles GET /category-courses/:category (category page,
// unpaginated).
func (h *CatalogHandler) CoursesByCategory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	courses, err := h.catalogService.CoursesByCategory(ctx, c.Param("category"))
	if err != nil {
		logger.Error("Failed to fetch category courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch category data"})
	}

	return c.JSON(http.StatusOK, courses)
}

// CoursesLength handles GET /products-length. The count uses the same filter
// predicate as Search, so the two cannot drift.
func (h *CatalogHandler) CoursesLength(c echo.Context) error {
	filter := postgres.CourseFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.catalogService.CountCourses(ctx, filter)
	if err != nil {
		logger.Error("Failed to count courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"result": count})
}

// GetCourse handles GET /course/:id: the full document, any valid session.
func (h *CatalogHandler) GetCourse(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid course id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	course, err := h.catalogService.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to fetch course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, course)
}

// EnrollmentCourse handles GET /enrollments-course/:id: title only.
func (h *CatalogHandler) EnrollmentCourse(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid course id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	title, err := h.catalogService.GetCourseTitle(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to fetch enrollment course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch enrollments course"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"title": title})
}

// AddCourse handles POST /add-course (admin).
func (h *CatalogHandler) AddCourse(c echo.Context) error {
	var req CourseRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate course request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	course := req.toDomain()
	if err := h.catalogService.AddCourse(ctx, &course); err != nil {
		logger.Error("Failed to store course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to store the course"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"insertedId": course.ID})
}

// AdminListCourses handles GET /all-courses (admin table with search, sort
// and pagination).
func (h *CatalogHandler) AdminListCourses(c echo.Context) error {
	search := c.QueryParam("search")
	sort := c.QueryParam("sort")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	courses, err := h.catalogService.AdminListCourses(ctx, search, sort, page, size)
	if err != nil {
		logger.Error("Failed to list courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to fetch the courses"})
	}

	return c.JSON(http.StatusOK, courses)
}

// AdminGetCourse handles GET /singel-course/:id (admin edit form).
func (h *CatalogHandler) AdminGetCourse(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid course id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	course, err := h.catalogService.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		logger.Error("Failed to fetch course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, course)
}

// UpdateCourse handles PUT /update-course/:id with upsert semantics: an
// unknown id is inserted, not rejected.
func (h *CatalogHandler) UpdateCourse(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid course id"})
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate course request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	course := req.toDomain()
	if err := h.catalogService.UpdateCourse(ctx, id, &course); err != nil {
		logger.Error("Failed to update course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"upsertedId": course.ID})
}

// DeleteCourse handles DELETE /course/:id.
func (h *CatalogHandler) DeleteCourse(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid course id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusOK, map[string]interface{}{"deletedCount": 0})
		}
		logger.Error("Failed to delete course", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to delete the course"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"deletedCount": 1})
}

// AdminCountCourses handles GET /products-count (admin pagination).
func (h *CatalogHandler) AdminCountCourses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	count, err := h.catalogService.AdminCountCourses(ctx, c.QueryParam("search"))
	if err != nil {
		logger.Error("Failed to count courses", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: msgInternalError})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"result": count})
}
